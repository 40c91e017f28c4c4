// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"iter"
	"strconv"
)

// Tag is a node of a decoded ASN.1 data value tree.
//
// A Tag either holds child nodes or content octets. If Children is non-empty
// the content of the data value is the concatenated encoding of its children
// and Content is ignored. Leaf nodes may have empty content. Trees are owned by
// the caller. The functions of this module never retain or modify a tree after
// they return.
type Tag struct {
	// Number is the identifier octet of the data value, including the class
	// and constructed bits.
	Number byte

	// Kind is the variant of the tag. It is determined by Number when a tag is
	// created by a [Factory].
	Kind Kind

	Children []*Tag
	Content  []byte
}

// Class returns the class encoded in t.Number.
func (t *Tag) Class() Class {
	return ClassOf(t.Number)
}

// TagNumber returns the tag number within the class of t, without the class
// and constructed bits.
func (t *Tag) TagNumber() int {
	return int(t.Number & tagNumberMask)
}

// IsUniversal reports whether t belongs to the universal class.
func (t *Tag) IsUniversal() bool {
	return t.Class() == ClassUniversal
}

// IsEOC reports whether t is an end-of-contents marker.
func (t *Tag) IsEOC() bool {
	return t.Kind == KindEOC && t.Number == TagEOC
}

// IsConstructed reports whether t uses the constructed encoding.
//
// SEQUENCE, SET and EMBEDDED PDV are always constructed. BOOLEAN, INTEGER,
// NULL, OBJECT IDENTIFIER, REAL and EOC are never constructed. Application,
// private and unknown tags use the constructed bit of their identifier octet.
// For all other kinds, including context-specific tags and encapsulating BIT
// STRING and OCTET STRING values, a tag is constructed if it has children but
// no content.
func (t *Tag) IsConstructed() bool {
	switch t.Kind.shape() {
	case shapeConstructed:
		return true
	case shapePrimitive:
		return false
	case shapeIdentifier:
		return t.Number&constructedBit != 0
	default:
		return len(t.Content) == 0 && len(t.Children) > 0
	}
}

// Name returns the display name of t. Universal tags use the name of their
// [Kind]. Context-specific tags are named by their tag number in square
// brackets, e.g. "[0]". Application, private and unknown tags use the class
// name followed by an underscore and the tag number, e.g. "Application_3".
func (t *Tag) Name() string {
	switch t.Kind {
	case KindContextSpecific:
		return "[" + strconv.Itoa(t.TagNumber()) + "]"
	case KindApplication, KindPrivate, KindUnknown:
		return t.Kind.String() + "_" + strconv.Itoa(t.TagNumber())
	default:
		return t.Kind.String()
	}
}

// String returns the display name of t.
func (t *Tag) String() string {
	return t.Name()
}

// Child returns the i-th child of t or nil if t has no such child. A negative
// index counts from the last child backwards.
func (t *Tag) Child(i int) *Tag {
	if t == nil {
		return nil
	}
	if i < 0 {
		i += len(t.Children)
	}
	if i < 0 || i >= len(t.Children) {
		return nil
	}
	return t.Children[i]
}

// Path follows the child indexes in path starting at t and returns the node
// reached. It returns nil if any index does not exist.
func (t *Tag) Path(path ...int) *Tag {
	for _, i := range path {
		if t = t.Child(i); t == nil {
			return nil
		}
	}
	return t
}

// All returns an iterator over t and all of its descendants in pre-order.
func (t *Tag) All() iter.Seq[*Tag] {
	return func(yield func(*Tag) bool) {
		t.walk(yield)
	}
}

// Walk calls fn for t and all of its descendants in pre-order. If fn returns
// false, the children of the current node are skipped.
func (t *Tag) Walk(fn func(*Tag) bool) {
	if t == nil || !fn(t) {
		return
	}
	for _, c := range t.Children {
		c.Walk(fn)
	}
}

func (t *Tag) walk(yield func(*Tag) bool) bool {
	if t == nil {
		return true
	}
	if !yield(t) {
		return false
	}
	for _, c := range t.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
