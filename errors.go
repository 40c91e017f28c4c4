// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import "errors"

// Error kinds reported by this module. Errors returned by the subpackages wrap
// one of these values and can be tested with [errors.Is].
var (
	// ErrMalformedLength indicates length octets that cannot be decoded: more
	// than 6 length octets or length octets missing at the end of the input.
	ErrMalformedLength = errors.New("malformed length")

	// ErrMisalignedContainer indicates a constructed value whose children do
	// not end exactly at the end of its content, that extends past the end of
	// the input, or whose indefinite-length content is missing the
	// end-of-contents marker.
	ErrMisalignedContainer = errors.New("truncated or misaligned container")

	// ErrTruncatedContent indicates a primitive value whose content extends
	// past the end of the input.
	ErrTruncatedContent = errors.New("truncated content")

	// ErrIndefiniteLeaf indicates a primitive value using the indefinite length
	// form. Its length cannot be determined.
	ErrIndefiniteLeaf = errors.New("cannot skip indefinite length")

	// ErrInvalidEncoding indicates content octets that cannot be interpreted
	// for the type of their tag.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidArgument indicates an invalid argument passed by the caller.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmpty indicates that no data value could be decoded because the input
	// was empty.
	ErrEmpty = errors.New("empty input")
)
