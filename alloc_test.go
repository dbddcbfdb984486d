// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package leu32_test

import (
	"testing"

	"code.hybscloud.com/leu32"
)

var (
	sinkU32  uint32
	sinkU32b leu32.U32b
)

func TestAllocs_PackUnpack(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		sinkU32b = leu32.PackLE(0x01020304)
		sinkU32 = leu32.UnpackLE(sinkU32b)
		sinkU32b = leu32.PackNative(sinkU32)
		sinkU32 = leu32.UnpackNative(sinkU32b)
	})
	if allocs != 0 {
		t.Fatalf("allocs/op=%v want 0", allocs)
	}
}

func TestAllocs_SliceHelpers(t *testing.T) {
	buf := make([]byte, 0, 16)
	allocs := testing.AllocsPerRun(1000, func() {
		b := leu32.AppendLE(buf[:0], 123)
		v, _, _ := leu32.ReadLE(b)
		u, _ := leu32.FromSlice(b)
		sinkU32 = v + u.Uint32()
	})
	if allocs != 0 {
		t.Fatalf("allocs/op=%v want 0", allocs)
	}
}
