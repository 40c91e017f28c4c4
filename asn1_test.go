// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleClassOf() {
	fmt.Println(ClassOf(TagSequence))
	fmt.Println(ClassOf(0x43))
	fmt.Println(ClassOf(0xa3))
	fmt.Println(ClassOf(0xc5))
	// Output:
	// Universal
	// Application
	// ContextSpecific
	// Private
}

func ExampleKindOf() {
	fmt.Println(KindOf(TagInteger))
	fmt.Println(KindOf(0x24))
	fmt.Println(KindOf(0x82))
	// Output:
	// INTEGER
	// Unknown
	// ContextSpecific
}

func TestClass_IsValid(t *testing.T) {
	for c := ClassUniversal; c <= ClassPrivate; c++ {
		assert.True(t, c.IsValid(), c.String())
	}
	assert.False(t, Class(4).IsValid())
	assert.Equal(t, "Class(4)", Class(4).String())
}

func TestKind_Shape(t *testing.T) {
	tests := map[string]struct {
		kind        Kind
		constructed bool
		primitive   bool
	}{
		"Sequence":    {KindSequence, true, false},
		"Set":         {KindSet, true, false},
		"EmbeddedPDV": {KindEmbeddedPDV, true, false},
		"Boolean":     {KindBoolean, false, true},
		"Integer":     {KindInteger, false, true},
		"Null":        {KindNull, false, true},
		"OID":         {KindObjectIdentifier, false, true},
		"Real":        {KindReal, false, true},
		"EOC":         {KindEOC, false, true},
		"BitString":   {KindBitString, false, false},
		"OctetString": {KindOctetString, false, false},
		"UTF8String":  {KindUTF8String, false, false},
		"Context":     {KindContextSpecific, false, false},
		"Application": {KindApplication, false, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.constructed, tc.kind.IsFixedConstructed())
			assert.Equal(t, tc.primitive, tc.kind.IsFixedPrimitive())
		})
	}
}
