// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

// A Factory creates empty [Tag] nodes from identifier octets. A decoder calls
// its Factory once per data value before the length and content are read.
// Implementations must not validate content and must be safe for concurrent
// use.
type Factory interface {
	NewTag(number byte) *Tag
}

// FactoryFunc is an adapter to allow the use of ordinary functions as a
// [Factory].
type FactoryFunc func(number byte) *Tag

// NewTag calls f(number).
func (f FactoryFunc) NewTag(number byte) *Tag {
	return f(number)
}

// DefaultFactory maps identifier octets onto tags as follows:
//
//   - Universal identifier octets are matched in full (including the
//     constructed bit) against the identifiers of the known universal types.
//     SEQUENCE and SET are matched by their constructed identifiers 0x30 and
//     0x31. Any other universal octet yields [KindUnknown].
//   - Application identifiers yield [KindApplication].
//   - Context-specific identifiers yield [KindContextSpecific].
//   - Private identifiers yield [KindPrivate].
//
// The identifier octet is always preserved in [Tag.Number].
var DefaultFactory Factory = FactoryFunc(func(number byte) *Tag {
	return &Tag{Number: number, Kind: KindOf(number)}
})

// New returns a leaf tag for identifier octet number with the given content,
// using the [DefaultFactory].
func New(number byte, content []byte) *Tag {
	t := DefaultFactory.NewTag(number)
	t.Content = content
	return t
}
