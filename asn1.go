// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1tree implements a generic tree model for ASN.1 data values
// encoded with the Basic Encoding Rules (BER) or the Distinguished Encoding
// Rules (DER) as defined in [Rec. ITU-T X.690]. Instead of mapping data values
// onto Go types, every data value is represented as a [Tag] node that keeps
// its identifier octet, its raw content octets and its children. This makes it
// possible to inspect, print and re-encode arbitrary structures such as X.509
// certificates or PKCS#10 certificate requests without knowing their schema.
//
// Decoding and encoding are implemented in the ber subpackage. The pretty
// subpackage renders a tree as human-readable text using the content
// strategies of the content subpackage.
//
// # Identifier Octets
//
// Only single-octet identifiers are supported. The identifier octet of a Tag
// is stored verbatim in [Tag.Number]: bits 8 and 7 hold the [Class], bit 6
// marks the constructed encoding and bits 5 to 1 hold the tag number within
// the class. Universal identifiers are mapped onto a fixed [Kind] by a
// [Factory]. All other identifiers are mapped onto [KindApplication],
// [KindContextSpecific], [KindPrivate] or [KindUnknown].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package asn1tree

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Bits of the identifier octet.
const (
	classShift     = 6
	constructedBit = 0x20
	tagNumberMask  = 0x1f
)

// Identifier octets of the universal types known to this package. The
// constructed types SEQUENCE and SET are listed with the constructed bit set,
// as they appear on the wire. These assignments are defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const (
	TagEOC              byte = 0x00
	TagBoolean          byte = 0x01
	TagInteger          byte = 0x02
	TagBitString        byte = 0x03
	TagOctetString      byte = 0x04
	TagNull             byte = 0x05
	TagOID              byte = 0x06
	TagObjectDescriptor byte = 0x07
	TagExternal         byte = 0x08
	TagReal             byte = 0x09
	TagEnumerated       byte = 0x0a
	TagEmbeddedPDV      byte = 0x0b
	TagUTF8String       byte = 0x0c
	TagNumericString    byte = 0x12
	TagPrintableString  byte = 0x13
	TagTeletexString    byte = 0x14
	TagT61String             = TagTeletexString
	TagVideotexString   byte = 0x15
	TagIA5String        byte = 0x16
	TagUTCTime          byte = 0x17
	TagGeneralizedTime  byte = 0x18
	TagGraphicString    byte = 0x19
	TagVisibleString    byte = 0x1a
	TagISO646String          = TagVisibleString
	TagGeneralString    byte = 0x1b
	TagUniversalString  byte = 0x1c
	TagCharacterString  byte = 0x1d
	TagBMPString        byte = 0x1e
	TagSequence         byte = 0x30
	TagSet              byte = 0x31
)

// ClassOf returns the class encoded in the identifier octet b.
func ClassOf(b byte) Class {
	return Class(b >> classShift)
}
