// Package content renders the content octets of primitive data values as
// human-readable strings.
//
// A [Table] maps identifier octets onto [Renderer] functions. The table
// returned by [Default] covers the universal types defined in
// [Rec. ITU-T X.680]. Values without a matching renderer are rendered in
// base64. Tables are plain maps and can be extended or modified by callers:
//
//	t := content.Default()
//	t[0x80] = content.UTF8String // render [0] as text
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package content

import (
	"maps"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/oid"
)

// A Renderer converts the content octets of a data value into a string.
// Renderers accept arbitrary input. If the content violates a structural
// constraint of its type, a Renderer returns an error wrapping
// [asn1tree.ErrInvalidEncoding].
type Renderer func(content []byte) (string, error)

// A Table selects a [Renderer] by the identifier octet of a data value.
type Table map[byte]Renderer

// defaultTable is never modified. Default hands out copies.
var defaultTable = NewTable(oid.Default)

// contextSpecific is the class bits of a primitive context-specific tag.
const contextSpecific byte = 0x80

// Default returns a copy of the default table. OBJECT IDENTIFIER values are
// described using [oid.Default].
func Default() Table {
	return maps.Clone(defaultTable)
}

// NewTable returns a table with renderers for the universal types. OBJECT
// IDENTIFIER values are described using dict, which may be nil. Primitive
// context-specific tags are rendered like OCTET STRING values, as implicitly
// tagged key identifiers and names are their most common content.
func NewTable(dict oid.Dictionary) Table {
	t := Table{
		asn1tree.TagBoolean:         Boolean,
		asn1tree.TagInteger:         Integer,
		asn1tree.TagBitString:       BitString,
		asn1tree.TagOctetString:     OctetString,
		asn1tree.TagNull:            Null,
		asn1tree.TagOID:             OID(dict),
		asn1tree.TagUTF8String:      UTF8String,
		asn1tree.TagNumericString:   Latin1,
		asn1tree.TagPrintableString: Latin1,
		asn1tree.TagTeletexString:   Base64,
		asn1tree.TagVideotexString:  Base64,
		asn1tree.TagIA5String:       Latin1,
		asn1tree.TagUTCTime:         UTCTime,
		asn1tree.TagGeneralizedTime: GeneralizedTime,
		asn1tree.TagGraphicString:   Base64,
		asn1tree.TagVisibleString:   Latin1,
		asn1tree.TagGeneralString:   Latin1,
		asn1tree.TagUniversalString: UniversalString,
		asn1tree.TagCharacterString: Latin1,
		asn1tree.TagBMPString:       BMPString,
	}
	for n := range byte(0x1f) {
		t[contextSpecific|n] = OctetString
	}
	return t
}

// Lookup returns the renderer for identifier octet number. If t has no entry
// for number, [Base64] is returned.
func (t Table) Lookup(number byte) Renderer {
	if r, ok := t[number]; ok && r != nil {
		return r
	}
	return Base64
}

// Render renders the content of tag using the renderer for its identifier
// octet. Tags with children have no content of their own and render as the
// empty string.
func (t Table) Render(tag *asn1tree.Tag) (string, error) {
	if tag == nil || len(tag.Children) > 0 {
		return "", nil
	}
	return t.Lookup(tag.Number)(tag.Content)
}

// Error reports content that cannot be rendered for its type. It wraps
// [asn1tree.ErrInvalidEncoding].
type Error struct {
	Type string // ASN.1 type name
	Msg  string
	Err  error // optional cause
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{asn1tree.ErrInvalidEncoding}
	}
	return []error{asn1tree.ErrInvalidEncoding, e.Err}
}

func (e *Error) Error() string {
	s := "content: invalid " + e.Type + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
