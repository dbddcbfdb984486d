// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package leu32 converts uint32 values to and from their 4-byte little-endian
// wire representation, independent of the host byte order.
//
// Semantics and design:
//   - Wire format: PackLE always yields byte 0 = least-significant byte and
//     byte 3 = most-significant byte, on every host.
//   - Native layout: PackNative and UnpackNative expose the host's in-memory
//     layout of a uint32. They are built from shifts and masks, never from
//     memory aliasing.
//   - Host order is a build-time constant on known Go ports (see internal/bo),
//     so PackLE and UnpackLE compile down to a single path per target.
//   - Every operation is a pure function over values. All of them are safe for
//     concurrent use. Pack and unpack never allocate.
//
// The only failure is a length mismatch in FromSlice. MustFromSlice treats it
// as a caller defect and panics.
package leu32

import (
	"math/bits"

	"code.hybscloud.com/leu32/internal/bo"
)

// Size is the encoded length of a uint32 in bytes.
const Size = 4

// U32b holds the 4-byte layout of a uint32, in wire or native order
// depending on how it was produced. Values compare byte for byte with ==.
type U32b [Size]byte

// FromSlice copies b into a U32b. It fails with ErrLengthMismatch unless
// len(b) == Size. To read from a longer buffer, pass the window: b[off:off+4].
func FromSlice(b []byte) (U32b, error) {
	if len(b) != Size {
		return U32b{}, lengthMismatch(len(b))
	}
	return U32b{b[0], b[1], b[2], b[3]}, nil
}

// MustFromSlice is like FromSlice but panics on a length mismatch.
func MustFromSlice(b []byte) U32b {
	u, err := FromSlice(b)
	if err != nil {
		panic(err)
	}
	return u
}

// PackNative returns v in the host's native byte order.
func PackNative(v uint32) U32b {
	if bo.Little {
		return U32b{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	}
	return U32b{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// UnpackNative is the inverse of PackNative.
func UnpackNative(b U32b) uint32 {
	if bo.Little {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// PackLE returns the little-endian wire representation of v.
func PackLE(v uint32) U32b {
	if bo.Little {
		return PackNative(v)
	}
	// The native big-endian layout of the swapped value is the
	// little-endian layout of v.
	return PackNative(bits.ReverseBytes32(v))
}

// UnpackLE decodes a little-endian wire representation produced by PackLE.
func UnpackLE(b U32b) uint32 {
	if bo.Little {
		return UnpackNative(b)
	}
	return bits.ReverseBytes32(UnpackNative(b))
}

// Uint32 decodes b as little-endian. It is shorthand for UnpackLE(b).
func (b U32b) Uint32() uint32 { return UnpackLE(b) }

// AppendLE appends the little-endian encoding of v to dst and returns the
// extended slice.
func AppendLE(dst []byte, v uint32) []byte {
	u := PackLE(v)
	return append(dst, u[:]...)
}

// ReadLE decodes a little-endian uint32 from the front of src and returns the
// remaining bytes. If src is shorter than Size, ok is false and rem is src.
func ReadLE(src []byte) (v uint32, rem []byte, ok bool) {
	if len(src) < Size {
		return 0, src, false
	}
	return UnpackLE(U32b(src[:Size])), src[Size:], true
}
