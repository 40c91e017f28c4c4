package certinfo

import (
	"strings"

	"github.com/pkg/errors"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/oid"
)

// KeyUsageFlag is a bit of the KeyUsage extension defined in RFC 5280, section
// 4.2.1.3.
type KeyUsageFlag uint16

// Key usage bits in the order of the named bits of the KeyUsage type.
const (
	DigitalSignature KeyUsageFlag = 1 << iota
	NonRepudiation
	KeyEncipherment
	DataEncipherment
	KeyAgreement
	KeyCertSign
	CRLSign
	EncipherOnly
	DecipherOnly
)

var keyUsageNames = [...]string{
	"DigitalSignature",
	"NonRepudiation",
	"KeyEncipherment",
	"DataEncipherment",
	"KeyAgreement",
	"KeyCertSign",
	"CRLSign",
	"EncipherOnly",
	"DecipherOnly",
}

// KeyUsage is the value of a KeyUsage extension.
type KeyUsage struct {
	Flags    KeyUsageFlag
	Critical bool
}

// Has reports whether all bits of f are set in u.
func (u KeyUsage) Has(f KeyUsageFlag) bool {
	return u.Flags&f == f
}

// String returns the names of the set bits separated by spaces.
func (u KeyUsage) String() string {
	var names []string
	for i, name := range keyUsageNames {
		if u.Flags&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, " ")
}

// KeyUsageFromBitString decodes the content octets of a KeyUsage BIT STRING.
// The first octet holds the number of unused bits. Bits beyond DecipherOnly
// are ignored.
func KeyUsageFromBitString(content []byte) (KeyUsage, error) {
	if len(content) == 0 {
		return KeyUsage{}, errors.Wrap(asn1tree.ErrInvalidEncoding, "key usage: empty bit string")
	}
	unused := int(content[0])
	data := content[1:]
	if unused > 7 || (len(data) == 0 && unused != 0) {
		return KeyUsage{}, errors.Wrapf(asn1tree.ErrInvalidEncoding, "key usage: %d unused bits", unused)
	}
	n := len(data)*8 - unused
	var u KeyUsage
	for i := 0; i < n && i < len(keyUsageNames); i++ {
		if data[i/8]&(0x80>>(i%8)) != 0 {
			u.Flags |= 1 << i
		}
	}
	return u, nil
}

// FindKeyUsage returns the KeyUsage extension found in t. The tree may be a
// certificate, a certificate request or any subtree containing the extension.
func FindKeyUsage(t *asn1tree.Tag) (KeyUsage, bool) {
	ext, ok := searchExtension(t, OIDKeyUsage)
	if !ok || ext.Value.Number != asn1tree.TagBitString {
		return KeyUsage{}, false
	}
	u, err := KeyUsageFromBitString(bitStringContent(ext.Value))
	if err != nil {
		return KeyUsage{}, false
	}
	u.Critical = ext.Critical
	return u, true
}

// bitStringContent returns the content octets of a BIT STRING, re-encoding
// encapsulated children.
func bitStringContent(t *asn1tree.Tag) []byte {
	if len(t.Children) == 0 {
		return t.Content
	}
	b := []byte{0}
	for _, c := range t.Children {
		b = ber.Append(b, c)
	}
	return b
}

// ExtendedKeyUsage is the value of an ExtendedKeyUsage extension as defined in
// RFC 5280, section 4.2.1.12.
type ExtendedKeyUsage struct {
	ServerAuth      bool
	ClientAuth      bool
	CodeSigning     bool
	EmailProtection bool
	TimeStamping    bool
	OCSPSigning     bool
	Critical        bool

	// Other holds the key purposes without a dedicated field.
	Other []oid.OID
}

// FindExtendedKeyUsage returns the ExtendedKeyUsage extension found in t. The
// tree may be a certificate, a certificate request or any subtree containing
// the extension.
func FindExtendedKeyUsage(t *asn1tree.Tag) (ExtendedKeyUsage, bool) {
	ext, ok := searchExtension(t, OIDExtendedKeyUsage)
	if !ok || ext.Value.Number != asn1tree.TagSequence {
		return ExtendedKeyUsage{}, false
	}
	eku := ExtendedKeyUsage{Critical: ext.Critical}
	for _, c := range ext.Value.Children {
		id, err := oid.FromBytes(c.Content, oid.Default)
		if c.Number != asn1tree.TagOID || err != nil {
			return ExtendedKeyUsage{}, false
		}
		switch id.Value {
		case "1.3.6.1.5.5.7.3.1":
			eku.ServerAuth = true
		case "1.3.6.1.5.5.7.3.2":
			eku.ClientAuth = true
		case "1.3.6.1.5.5.7.3.3":
			eku.CodeSigning = true
		case "1.3.6.1.5.5.7.3.4":
			eku.EmailProtection = true
		case "1.3.6.1.5.5.7.3.8":
			eku.TimeStamping = true
		case "1.3.6.1.5.5.7.3.9":
			eku.OCSPSigning = true
		default:
			eku.Other = append(eku.Other, id)
		}
	}
	return eku, true
}

// searchExtension finds the first extension with the given identifier
// anywhere in t.
func searchExtension(t *asn1tree.Tag, id string) (Extension, bool) {
	for n := range t.All() {
		if n.Number != asn1tree.TagSequence || oidOf(n.Child(0)) != id {
			continue
		}
		if ext, ok := parseExtension(n); ok {
			return ext, true
		}
	}
	return Extension{}, false
}
