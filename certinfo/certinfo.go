// Package certinfo extracts information from X.509 certificates and PKCS #10
// certificate requests that have been decoded into tag trees.
//
// The functions of this package match the structure of the tree against the
// layouts defined in RFC 5280 and RFC 2986. They accept any tree: if a tree
// does not have the expected shape, the functions report that no information
// was found instead of failing.
package certinfo

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/content"
	"codello.dev/asn1tree/oid"
)

// Object identifiers of the structures recognized by this package.
const (
	OIDKeyUsage                  = "2.5.29.15"
	OIDExtendedKeyUsage          = "2.5.29.37"
	OIDSubjectAltName            = "2.5.29.17"
	OIDSubjectDirectoryAttribute = "2.5.29.9"
	OIDSubjectKeyIdentifier      = "2.5.29.14"
	OIDAuthorityKeyIdentifier    = "2.5.29.35"
	OIDExtensionRequest          = "1.2.840.113549.1.9.14"
)

// Identifier octets of the explicitly tagged fields in certificates and
// requests.
const (
	tagVersion    byte = 0xa0 // [0] EXPLICIT in TBSCertificate
	tagAttributes byte = 0xa0 // [0] IMPLICIT in CertificationRequestInfo
	tagExtensions byte = 0xa3 // [3] EXPLICIT in TBSCertificate
)

// ErrNotCertificate is returned by functions that require a certificate when
// the tree does not have the shape of a certificate.
var ErrNotCertificate = errors.New("certinfo: not a certificate")

// renderers is used to render attribute values.
var renderers = content.Default()

// IsCertificate reports whether t has the shape of an X.509 v3 certificate:
// a SEQUENCE of a to-be-signed SEQUENCE starting with the explicit version 2,
// an algorithm identifier and a BIT STRING signature.
func IsCertificate(t *asn1tree.Tag) bool {
	if !isSigned(t) {
		return false
	}
	version := t.Path(0, 0)
	return version.Number == tagVersion && isInteger(version.Child(0), 2)
}

// IsCertificateRequest reports whether t has the shape of a PKCS #10
// certificate request: a SEQUENCE of a request info SEQUENCE starting with
// version 0, an algorithm identifier and a BIT STRING signature.
func IsCertificateRequest(t *asn1tree.Tag) bool {
	return isSigned(t) && isInteger(t.Path(0, 0), 0)
}

// isSigned checks the outer structure shared by certificates and requests.
func isSigned(t *asn1tree.Tag) bool {
	if t == nil || len(t.Children) != 3 || len(t.Child(0).Children) == 0 {
		return false
	}
	alg := t.Child(1)
	if alg.Number != asn1tree.TagSequence || len(alg.Children) < 1 || len(alg.Children) > 2 {
		return false
	}
	sig := t.Child(2)
	return alg.Child(0).Number == asn1tree.TagOID &&
		sig.Number == asn1tree.TagBitString && len(sig.Children) == 0
}

func isInteger(t *asn1tree.Tag, v byte) bool {
	return t != nil && t.Number == asn1tree.TagInteger && len(t.Content) == 1 && t.Content[0] == v
}

// oidOf returns the dotted value of t if t is an OBJECT IDENTIFIER.
func oidOf(t *asn1tree.Tag) string {
	if t == nil || t.Number != asn1tree.TagOID {
		return ""
	}
	s, err := oid.Decode(t.Content)
	if err != nil {
		return ""
	}
	return s
}

// SerialNumber returns the serial number of certificate t in decimal.
func SerialNumber(t *asn1tree.Tag) (string, bool) {
	if !IsCertificate(t) {
		return "", false
	}
	s, err := renderers.Render(t.Path(0, 1))
	if err != nil {
		return "", false
	}
	return s, true
}

// NotBefore returns the start of the validity period of certificate t.
func NotBefore(t *asn1tree.Tag) (time.Time, error) {
	return validity(t, 0)
}

// NotAfter returns the end of the validity period of certificate t.
func NotAfter(t *asn1tree.Tag) (time.Time, error) {
	return validity(t, 1)
}

func validity(t *asn1tree.Tag, i int) (time.Time, error) {
	if !IsCertificate(t) {
		return time.Time{}, ErrNotCertificate
	}
	ts, err := ParseTime(t.Path(0, 4, i))
	return ts, errors.Wrap(err, "certinfo: validity")
}

// ParseTime parses a UTCTime or GeneralizedTime node in its DER form.
func ParseTime(t *asn1tree.Tag) (time.Time, error) {
	if t == nil {
		return time.Time{}, errors.Wrap(asn1tree.ErrInvalidArgument, "nil time node")
	}
	var ts time.Time
	s := cryptobyte.String(ber.Encode(t))
	switch cbasn1.Tag(t.Number) {
	case cbasn1.UTCTime:
		if !s.ReadASN1UTCTime(&ts) {
			return time.Time{}, errors.Wrap(asn1tree.ErrInvalidEncoding, "malformed UTCTime")
		}
	case cbasn1.GeneralizedTime:
		if !s.ReadASN1GeneralizedTime(&ts) {
			return time.Time{}, errors.Wrap(asn1tree.ErrInvalidEncoding, "malformed GeneralizedTime")
		}
	default:
		return time.Time{}, errors.Errorf("unexpected %s node for time", t.Name())
	}
	return ts, nil
}

// An Extension is a certificate extension as defined in RFC 5280, section
// 4.1.2.9.
type Extension struct {
	ID       oid.OID
	Critical bool
	Value    *asn1tree.Tag // decoded extnValue
}

// Extensions returns the extensions of certificate t or the extensions
// requested by certificate request t. The second return value reports whether
// t is a certificate or request with extensions.
func Extensions(t *asn1tree.Tag) ([]Extension, bool) {
	list := extensionList(t)
	if list == nil {
		return nil, false
	}
	exts := make([]Extension, 0, len(list.Children))
	for _, e := range list.Children {
		if ext, ok := parseExtension(e); ok {
			exts = append(exts, ext)
		}
	}
	return exts, true
}

// FindExtension returns the extension with the given object identifier.
func FindExtension(t *asn1tree.Tag, id string) (Extension, bool) {
	exts, _ := Extensions(t)
	for _, ext := range exts {
		if ext.ID.Value == id {
			return ext, true
		}
	}
	return Extension{}, false
}

// extensionList returns the SEQUENCE of extensions of a certificate or a
// request.
func extensionList(t *asn1tree.Tag) *asn1tree.Tag {
	switch {
	case IsCertificate(t):
		last := t.Path(0, -1)
		if last.Number != tagExtensions {
			return nil
		}
		return last.Child(0)
	case IsCertificateRequest(t):
		attrs := t.Path(0, -1)
		if attrs.Number != tagAttributes {
			return nil
		}
		for _, attr := range attrs.Children {
			if oidOf(attr.Child(0)) == OIDExtensionRequest {
				return attr.Path(1, 0)
			}
		}
	}
	return nil
}

// parseExtension parses SEQUENCE { extnID, critical DEFAULT FALSE, extnValue }.
func parseExtension(t *asn1tree.Tag) (Extension, bool) {
	if t.Number != asn1tree.TagSequence || len(t.Children) < 2 || len(t.Children) > 3 {
		return Extension{}, false
	}
	id, err := oid.FromBytes(t.Child(0).Content, oid.Default)
	if t.Child(0).Number != asn1tree.TagOID || err != nil {
		return Extension{}, false
	}
	ext := Extension{ID: id}
	if len(t.Children) == 3 {
		crit := t.Child(1)
		ext.Critical = crit.Number == asn1tree.TagBoolean && len(crit.Content) == 1 && crit.Content[0] == 0xff
	}
	value := t.Child(-1)
	if value.Number != asn1tree.TagOctetString {
		return Extension{}, false
	}
	if len(value.Children) > 0 {
		ext.Value = value.Child(0)
	} else if v, err := ber.Decode(value.Content); err == nil {
		ext.Value = v
	} else {
		return Extension{}, false
	}
	return ext, true
}
