// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// The functions in this file build trees programmatically, e.g. for encoding
// with the ber package. String constructors validate the character set of
// their type and return an error wrapping [ErrInvalidArgument] on violations.

//region Constructed Types

// NewSequence returns a SEQUENCE with the given children.
func NewSequence(children ...*Tag) *Tag {
	return &Tag{Number: TagSequence, Kind: KindSequence, Children: children}
}

// NewSet returns a SET with the given children.
func NewSet(children ...*Tag) *Tag {
	return &Tag{Number: TagSet, Kind: KindSet, Children: children}
}

// NewContextSpecific returns a context-specific tag with tag number n. If
// constructed is true, the constructed bit is set and children become the
// children of the tag. Otherwise the tag is a leaf whose Content is set by the
// caller. n must be less than 31.
func NewContextSpecific(n int, constructed bool, children ...*Tag) (*Tag, error) {
	if n < 0 || n >= tagNumberMask {
		return nil, argumentError("context-specific tag number out of range")
	}
	b := byte(ClassContextSpecific)<<classShift | byte(n)
	if constructed {
		b |= constructedBit
	} else if len(children) > 0 {
		return nil, argumentError("primitive tag cannot have children")
	}
	return &Tag{Number: b, Kind: KindContextSpecific, Children: children}, nil
}

//endregion

//region [UNIVERSAL 1] BOOLEAN

// NewBoolean returns a BOOLEAN tag using the DER encoding of v.
func NewBoolean(v bool) *Tag {
	b := byte(0x00)
	if v {
		b = 0xff
	}
	return &Tag{Number: TagBoolean, Kind: KindBoolean, Content: []byte{b}}
}

//endregion

//region [UNIVERSAL 2] INTEGER

// NewInteger returns an INTEGER tag holding the minimal two's complement
// encoding of v.
func NewInteger(v int64) *Tag {
	n := 8
	for n > 1 {
		top := byte(v >> ((n - 1) * 8))
		next := byte(v>>((n-2)*8)) & 0x80
		if (top == 0x00 && next == 0) || (top == 0xff && next != 0) {
			n--
			continue
		}
		break
	}
	content := make([]byte, n)
	for i := range content {
		content[i] = byte(v >> ((n - 1 - i) * 8))
	}
	return &Tag{Number: TagInteger, Kind: KindInteger, Content: content}
}

//endregion

//region [UNIVERSAL 3] BIT STRING

// NewBitString returns a BIT STRING tag with the given data. unused is the
// number of unused bits in the last byte of data and must be between 0 and 7.
// If data is empty, unused must be 0.
func NewBitString(unused byte, data []byte) (*Tag, error) {
	if unused > 7 {
		return nil, argumentError("number of unused bits must be between 0 and 7")
	}
	if len(data) == 0 && unused != 0 {
		return nil, argumentError("empty bit string cannot have unused bits")
	}
	content := make([]byte, 0, len(data)+1)
	content = append(append(content, unused), data...)
	return &Tag{Number: TagBitString, Kind: KindBitString, Content: content}, nil
}

//endregion

//region [UNIVERSAL 4] OCTET STRING

// NewOctetString returns an OCTET STRING tag holding b.
func NewOctetString(b []byte) *Tag {
	return &Tag{Number: TagOctetString, Kind: KindOctetString, Content: b}
}

//endregion

//region [UNIVERSAL 5] NULL

// NewNull returns a NULL tag.
func NewNull() *Tag {
	return &Tag{Number: TagNull, Kind: KindNull}
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// NewObjectIdentifier returns an OBJECT IDENTIFIER tag with the given encoded
// subidentifiers. Use the oid package to encode dotted strings.
func NewObjectIdentifier(encoded []byte) *Tag {
	return &Tag{Number: TagOID, Kind: KindObjectIdentifier, Content: encoded}
}

//endregion

//region [UNIVERSAL 12] UTF8String

// NewUTF8String returns a UTF8String tag. s must be valid UTF-8.
func NewUTF8String(s string) (*Tag, error) {
	if !utf8.ValidString(s) {
		return nil, argumentError("UTF8String contains invalid UTF-8")
	}
	return &Tag{Number: TagUTF8String, Kind: KindUTF8String, Content: []byte(s)}, nil
}

//endregion

//region [UNIVERSAL 18] NumericString

// NewNumericString returns a NumericString tag. s can only consist of the
// digits 0-9 and space.
func NewNumericString(s string) (*Tag, error) {
	for i := 0; i < len(s); i++ {
		if !isNumeric(s[i]) {
			return nil, argumentError("NumericString contains invalid character")
		}
	}
	return &Tag{Number: TagNumericString, Kind: KindNumericString, Content: []byte(s)}, nil
}

func isNumeric(b byte) bool {
	return '0' <= b && b <= '9' || b == ' '
}

//endregion

//region [UNIVERSAL 19] PrintableString

// NewPrintableString returns a PrintableString tag. A printable string can
// only contain the following ASCII characters:
//
//	A-Z	// upper case letters
//	a-z	// lower case letters
//	0-9	// digits
//	 	// space
//	'	// apostrophe
//	()	// Parenthesis
//	+-/	// plus, hyphen, solidus
//	.,:	// fill stop, comma, colon
//	=	// equals sign
//	?	// question mark
func NewPrintableString(s string) (*Tag, error) {
	for i := 0; i < len(s); i++ {
		if !isPrintable(s[i]) {
			return nil, argumentError("PrintableString contains invalid character")
		}
	}
	return &Tag{Number: TagPrintableString, Kind: KindPrintableString, Content: []byte(s)}, nil
}

func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?'
}

//endregion

//region [UNIVERSAL 22] IA5String

// NewIA5String returns an IA5String tag. s must consist of ASCII characters
// only.
func NewIA5String(s string) (*Tag, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return nil, argumentError("IA5String contains non-ASCII character")
		}
	}
	return &Tag{Number: TagIA5String, Kind: KindIA5String, Content: []byte(s)}, nil
}

//endregion

//region [UNIVERSAL 23] UTCTime

// NewUTCTime returns a UTCTime tag for t in the DER form YYMMDDhhmmssZ. The
// year of t must be between 1950 and 2049.
func NewUTCTime(t time.Time) (*Tag, error) {
	t = t.UTC()
	if t.Year() < 1950 || t.Year() >= 2050 {
		return nil, argumentError("UTCTime year out of range")
	}
	return &Tag{Number: TagUTCTime, Kind: KindUTCTime, Content: []byte(t.Format("060102150405Z"))}, nil
}

//endregion

//region [UNIVERSAL 24] GeneralizedTime

// NewGeneralizedTime returns a GeneralizedTime tag for t in the DER form
// YYYYMMDDhhmmssZ. Fractional seconds are dropped.
func NewGeneralizedTime(t time.Time) *Tag {
	return &Tag{Number: TagGeneralizedTime, Kind: KindGeneralizedTime, Content: []byte(t.UTC().Format("20060102150405Z"))}
}

//endregion

//region [UNIVERSAL 26] VisibleString

// NewVisibleString returns a VisibleString tag. s must consist of visible
// ASCII characters only.
func NewVisibleString(s string) (*Tag, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] >= 0x7F {
			return nil, argumentError("VisibleString contains invalid character")
		}
	}
	return &Tag{Number: TagVisibleString, Kind: KindVisibleString, Content: []byte(s)}, nil
}

//endregion

//region [UNIVERSAL 28] UniversalString

// NewUniversalString returns a UniversalString tag holding s in big endian
// UTF-32.
func NewUniversalString(s string) (*Tag, error) {
	if !utf8.ValidString(s) {
		return nil, argumentError("UniversalString contains invalid UTF-8")
	}
	b, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return &Tag{Number: TagUniversalString, Kind: KindUniversalString, Content: b}, nil
}

//endregion

//region [UNIVERSAL 30] BMPString

// NewBMPString returns a BMPString tag holding s in big endian UTF-16. s can
// only contain characters of the Unicode Basic Multilingual Plane.
func NewBMPString(s string) (*Tag, error) {
	if !utf8.ValidString(s) {
		return nil, argumentError("BMPString contains invalid UTF-8")
	}
	for _, r := range s {
		if r > 0xFFFF || (r >= 0xD800 && r < 0xE000) {
			return nil, argumentError("BMPString contains character outside the BMP")
		}
	}
	b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return &Tag{Number: TagBMPString, Kind: KindBMPString, Content: b}, nil
}

//endregion

// argumentError wraps ErrInvalidArgument with msg.
func argumentError(msg string) error {
	return &wrappedError{msg: msg, err: ErrInvalidArgument}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string { return "asn1tree: " + e.err.Error() + ": " + e.msg }
func (e *wrappedError) Unwrap() error { return e.err }
