// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"

	"codello.dev/asn1tree"
)

// Encode returns the encoding of the tree rooted at t. Every node is written in
// the definite-length form with minimal length octets. Nodes with children are
// encoded from their children and their Content is ignored. A universal BIT
// STRING with children gets a leading zero unused-bits octet.
//
// Encode returns nil if t is nil.
func Encode(t *asn1tree.Tag) []byte {
	if t == nil {
		return nil
	}
	return Append(make([]byte, 0, EncodedLen(t)), t)
}

// Append appends the encoding of t to dst and returns the extended buffer.
func Append(dst []byte, t *asn1tree.Tag) []byte {
	if t == nil {
		return dst
	}
	dst = append(dst, t.Number)
	l := contentLen(t)
	dst = appendLength(dst, l)
	if len(t.Children) == 0 {
		return append(dst, t.Content...)
	}
	if t.Number == asn1tree.TagBitString {
		dst = append(dst, 0)
	}
	for _, child := range t.Children {
		dst = Append(dst, child)
	}
	return dst
}

// EncodedLen returns the number of bytes [Encode] produces for t.
func EncodedLen(t *asn1tree.Tag) int {
	if t == nil {
		return 0
	}
	l := contentLen(t)
	return 1 + lengthSize(l) + l
}

// contentLen returns the number of content octets of t when encoded.
func contentLen(t *asn1tree.Tag) int {
	if len(t.Children) == 0 {
		return len(t.Content)
	}
	l := 0
	if t.Number == asn1tree.TagBitString {
		l++
	}
	for _, child := range t.Children {
		l += EncodedLen(child)
	}
	return l
}

// Encoder writes encoded trees to an output stream. It is the counterpart to
// the [Decoder] type.
//
// To create a new Encoder, use the [NewEncoder] function.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder creates a new [Encoder] writing to w. Each call to
// [Encoder.Encode] issues a single write to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the encoding of t to the underlying writer. Passing a nil tree
// returns an error wrapping [asn1tree.ErrInvalidArgument].
func (e *Encoder) Encode(t *asn1tree.Tag) error {
	if t == nil {
		return &EncodeError{Err: asn1tree.ErrInvalidArgument}
	}
	e.buf = Append(e.buf[:0], t)
	n, err := e.w.Write(e.buf)
	if err == nil && n < len(e.buf) {
		err = io.ErrShortWrite
	}
	return err
}

// EncodeError indicates that a tree could not be encoded.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "encode error: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
