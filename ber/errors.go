// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"
	"strconv"

	"codello.dev/asn1tree"
)

var (
	errNonZeroUnused   = errors.New("bit string with unused bits cannot encapsulate")
	errEncapsulatedEOC = errors.New("end-of-contents in encapsulated content")
	errInvalidEOC      = errors.New("end-of-contents with non-zero length")
	errNonCanonical    = errors.New("encapsulated content does not re-encode to the same octets")
)

// SyntaxError represents an error in the BER encoding. The error value contains
// the location of the error within the input as well as the identifier octet of
// the surrounding constructed data value.
//
// Err wraps one of the error kinds defined in the asn1tree package, such as
// [asn1tree.ErrMalformedLength], or an error returned by the underlying reader.
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. The location is the start of the
	// identifier octet of the data value containing the error, relative to the
	// position of the reader when decoding started.
	ByteOffset int64

	// Tag is the identifier octet of the constructed data value whose content
	// contained the malformed data value. It is 0 for top-level data values.
	Tag byte
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("ber: syntax error")
	if e.Tag != asn1tree.TagEOC {
		b = append(b, " within "...)
		b = append(b, asn1tree.DefaultFactory.NewTag(e.Tag).Name()...)
	}
	b = strconv.AppendInt(append(b, " for value beginning at offset "...), e.ByteOffset, 10)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// kindError attaches an error kind to a more specific reason. Both are matched
// by errors.Is.
type kindError struct {
	kind   error
	reason error
}

func (e *kindError) Error() string   { return e.kind.Error() + ": " + e.reason.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.reason} }

// ioError represents an error that occurred when reading from or seeking in the
// underlying data stream.
type ioError struct {
	action string // "read" or "seek"
	err    error
}

func (e *ioError) Unwrap() error { return e.err }
func (e *ioError) Error() string { return e.action + " error: " + e.err.Error() }

// noEOF returns err, unless err == io.EOF, in which case it returns io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
