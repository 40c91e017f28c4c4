// Package vlq implements [Variable-length quantity] encoding as used by the
// subidentifiers of an ASN.1 OBJECT IDENTIFIER. A VLQ is a base-128
// representation of an unsigned integer where the eighth bit of every byte
// except the last marks continuation.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrOverflow indicates a VLQ that does not fit into the target type.
var ErrOverflow = errors.New("vlq too large for target type")

// Read parses an unsigned VLQ from r. The maximum allowed value is limited by
// the size of T.
//
// If r returns io.EOF on the first read, the returned error is io.EOF as well.
// A VLQ whose last byte still has the continuation bit set results in
// io.ErrUnexpectedEOF.
func Read[T constraints.Unsigned](r io.ByteReader) (ret T, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	ret = T(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)
	for b&0x80 != 0 {
		if b, err = r.ReadByte(); err != nil {
			break
		}
		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, ErrOverflow
		}
		ret = ret<<7 | T(b&0x7f)
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return ret, err
}

// Size returns the number of bytes needed to encode n as a VLQ.
func Size[T constraints.Unsigned](n T) int {
	l := 1
	for n >>= 7; n > 0; n >>= 7 {
		l++
	}
	return l
}

// Append appends the VLQ encoding of i to dst and returns the extended slice.
func Append[T constraints.Unsigned](dst []byte, i T) []byte {
	for j := Size(i) - 1; j >= 0; j-- {
		b := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
