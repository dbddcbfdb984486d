// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package leu32

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch reports a byte slice whose length is not exactly Size.
var ErrLengthMismatch = errors.New("leu32: length mismatch")

func lengthMismatch(n int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, n, Size)
}
