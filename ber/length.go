// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"

	"codello.dev/asn1tree"
)

// LengthIndefinite is the length reported for data values encoded with the
// constructed indefinite-length format.
const LengthIndefinite = -1

// maxLengthOctets is the maximum number of subsequent length octets in the long
// form. Longer lengths cannot describe content that fits into memory.
const maxLengthOctets = 6

var errLengthOctets = errors.New("too many length octets")

// readLength decodes the length octets at the current position of c. It
// returns [LengthIndefinite] for the indefinite form.
func readLength(c *cursor) (int64, error) {
	b, err := c.readByte()
	if err == io.EOF {
		return 0, c.overrun(1, asn1tree.ErrMalformedLength)
	} else if err != nil {
		return 0, err
	}
	if b&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		return int64(b), nil
	}
	if b == 0x80 {
		return LengthIndefinite, nil
	}

	// Bottom 7 bits give the number of length bytes to follow.
	n := int(b & 0x7f)
	if n > maxLengthOctets {
		return 0, &kindError{asn1tree.ErrMalformedLength, errLengthOctets}
	}
	if c.remaining() < int64(n) {
		return 0, c.overrun(int64(n), asn1tree.ErrMalformedLength)
	}
	var l int64
	for range n {
		if b, err = c.readByte(); err != nil {
			return 0, err
		}
		l = l<<8 | int64(b)
	}
	return l, nil
}

// lengthSize returns the number of octets needed to encode l in the definite
// form.
func lengthSize(l int) int {
	if l < 0x80 {
		return 1
	}
	n := 1
	for ; l > 0; l >>= 8 {
		n++
	}
	return n
}

// appendLength appends the minimal definite-form encoding of l to dst.
func appendLength(dst []byte, l int) []byte {
	if l < 0x80 {
		return append(dst, byte(l))
	}
	numBytes := lengthSize(l) - 1
	dst = append(dst, 0x80|byte(numBytes))
	for ; numBytes > 0; numBytes-- {
		dst = append(dst, byte(l>>((numBytes-1)*8)))
	}
	return dst
}
