// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

// Kind identifies the variant of a [Tag]. Each universal type known to this
// package has its own Kind. Tags of the application, context-specific and
// private classes share one Kind per class. Universal identifier octets that
// are not known to the [DefaultFactory] use [KindUnknown].
//
// The String method of a Kind returns the display name used for universal
// tags. Use [Tag.Name] for a name that includes the tag number.
//
//go:generate stringer -type=Kind -linecomment
type Kind uint8

const (
	KindEOC              Kind = iota // EOC
	KindBoolean                      // Boolean
	KindInteger                      // INTEGER
	KindBitString                    // BitString
	KindOctetString                  // OctetString
	KindNull                         // NULL
	KindObjectIdentifier             // OBJECT_IDENTIFIER
	KindObjectDescriptor             // ObjectDescriptor
	KindExternal                     // External
	KindReal                         // Real
	KindEnumerated                   // Enumerated
	KindEmbeddedPDV                  // EmbeddedPDV
	KindUTF8String                   // UTF8String
	KindSequence                     // Sequence
	KindSet                          // Set
	KindNumericString                // NumericString
	KindPrintableString              // PrintableString
	KindTeletexString                // TeletexString
	KindVideotexString               // VideotexString
	KindIA5String                    // IA5String
	KindUTCTime                      // UTCTime
	KindGeneralizedTime              // GeneralizedTime
	KindGraphicString                // GraphicString
	KindVisibleString                // VisibleString
	KindGeneralString                // GeneralString
	KindUniversalString              // UniversalString
	KindCharacterString              // CharacterString
	KindBMPString                    // BMPString
	KindContextSpecific              // ContextSpecific
	KindApplication                  // Application
	KindPrivate                      // Private
	KindUnknown                      // Unknown
)

// kindShape describes how the constructed flag of a Kind is determined.
type kindShape uint8

const (
	shapeDerived     kindShape = iota // constructed iff it has children and no content
	shapeConstructed                  // always constructed
	shapePrimitive                    // never constructed
	shapeIdentifier                   // bit 6 of the identifier octet
)

func (k Kind) shape() kindShape {
	switch k {
	case KindSequence, KindSet, KindEmbeddedPDV:
		return shapeConstructed
	case KindBoolean, KindInteger, KindNull, KindObjectIdentifier, KindReal, KindEOC:
		return shapePrimitive
	case KindApplication, KindPrivate, KindUnknown:
		return shapeIdentifier
	default:
		return shapeDerived
	}
}

// IsFixedConstructed reports whether values of kind k always use the
// constructed encoding.
func (k Kind) IsFixedConstructed() bool {
	return k.shape() == shapeConstructed
}

// IsFixedPrimitive reports whether values of kind k always use the primitive
// encoding.
func (k Kind) IsFixedPrimitive() bool {
	return k.shape() == shapePrimitive
}

// universalKinds maps universal identifier octets onto their Kind.
var universalKinds = map[byte]Kind{
	TagEOC:              KindEOC,
	TagBoolean:          KindBoolean,
	TagInteger:          KindInteger,
	TagBitString:        KindBitString,
	TagOctetString:      KindOctetString,
	TagNull:             KindNull,
	TagOID:              KindObjectIdentifier,
	TagObjectDescriptor: KindObjectDescriptor,
	TagExternal:         KindExternal,
	TagReal:             KindReal,
	TagEnumerated:       KindEnumerated,
	TagEmbeddedPDV:      KindEmbeddedPDV,
	TagUTF8String:       KindUTF8String,
	TagSequence:         KindSequence,
	TagSet:              KindSet,
	TagNumericString:    KindNumericString,
	TagPrintableString:  KindPrintableString,
	TagTeletexString:    KindTeletexString,
	TagVideotexString:   KindVideotexString,
	TagIA5String:        KindIA5String,
	TagUTCTime:          KindUTCTime,
	TagGeneralizedTime:  KindGeneralizedTime,
	TagGraphicString:    KindGraphicString,
	TagVisibleString:    KindVisibleString,
	TagGeneralString:    KindGeneralString,
	TagUniversalString:  KindUniversalString,
	TagCharacterString:  KindCharacterString,
	TagBMPString:        KindBMPString,
}

// KindOf returns the Kind the [DefaultFactory] assigns to identifier octet b.
func KindOf(b byte) Kind {
	switch ClassOf(b) {
	case ClassApplication:
		return KindApplication
	case ClassContextSpecific:
		return KindContextSpecific
	case ClassPrivate:
		return KindPrivate
	}
	if k, ok := universalKinds[b]; ok {
		return k
	}
	return KindUnknown
}
