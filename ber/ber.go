// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements a tree codec for the ASN.1 Basic Encoding Rules
// (BER). The Basic Encoding Rules are defined in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// Data values are decoded into [asn1tree.Tag] trees without a schema. Each data
// value becomes one node, constructed values hold their children, and
// primitive values hold their raw content octets. The following limitations
// apply:
//
//   - Only single-octet identifiers are supported. The high tag number form is
//     not recognized.
//   - The length of a data value is limited to 6 length octets.
//   - Content is not validated for its type. Interpreting content is the job of
//     the content package.
//
// Encoding always produces the definite-length form with minimal length
// octets. Decoding and re-encoding DER input therefore reproduces the input
// exactly, while indefinite-length BER input is converted into the
// definite-length form.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import (
	"bytes"
	"io"

	"codello.dev/asn1tree"
)

// Decode decodes the first data value in b. Any bytes following the first data
// value are ignored. Use a [Decoder] to read multiple consecutive values.
//
// If b is empty, a [*SyntaxError] wrapping [asn1tree.ErrEmpty] is returned.
func Decode(b []byte, opts ...DecodeOption) (*asn1tree.Tag, error) {
	return DecodeReader(bytes.NewReader(b), opts...)
}

// TryDecode is like [Decode] but reports failure as a boolean and a message
// instead of an error value.
func TryDecode(b []byte, opts ...DecodeOption) (t *asn1tree.Tag, ok bool, msg string) {
	t, err := Decode(b, opts...)
	if err != nil {
		return nil, false, err.Error()
	}
	return t, true, ""
}

// DecodeReader decodes the data value at the current position of r. The reader
// is left positioned after the data value. It is never closed.
func DecodeReader(r io.ReadSeeker, opts ...DecodeOption) (*asn1tree.Tag, error) {
	t, err := NewDecoder(r, opts...).Decode()
	if err == io.EOF {
		return nil, &SyntaxError{Err: asn1tree.ErrEmpty}
	}
	return t, err
}
