package certinfo

import (
	"net"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/content"
	"codello.dev/asn1tree/oid"
)

// GeneralNameKind is the alternative of a GeneralName. Its value is the
// context-specific tag number of the alternative.
type GeneralNameKind uint8

// Alternatives of the GeneralName type defined in RFC 5280, section 4.2.1.6.
const (
	OtherName GeneralNameKind = iota
	RFC822Name
	DNSName
	X400Address
	DirectoryName
	EDIPartyName
	URI
	IPAddress
	RegisteredID
)

var generalNameKinds = [...]string{
	"OtherName",
	"RFC822Name",
	"DNSName",
	"X400Address",
	"DirectoryName",
	"EDIPartyName",
	"URI",
	"IPAddress",
	"RegisteredID",
}

func (k GeneralNameKind) String() string {
	if int(k) < len(generalNameKinds) {
		return generalNameKinds[k]
	}
	return "GeneralNameKind(" + strconv.Itoa(int(k)) + ")"
}

// A GeneralName is an entry of a SubjectAltName extension.
//
// Value holds the text of the name. Other names hold the rendered value and
// their type in ID. Directory names are rendered as comma-separated
// type=value pairs. X.400 addresses are rendered as the Base64 encoding of
// their DER form. Registered IDs hold the identifier both in Value and in ID.
type GeneralName struct {
	Kind  GeneralNameKind
	ID    oid.OID
	Value string
	Node  *asn1tree.Tag
}

// SubjectAlternativeNames returns the entries of the SubjectAltName extension
// of certificate or certificate request t. Entries that cannot be interpreted
// are skipped.
func SubjectAlternativeNames(t *asn1tree.Tag) ([]GeneralName, bool) {
	ext, ok := FindExtension(t, OIDSubjectAltName)
	if !ok || ext.Value.Number != asn1tree.TagSequence {
		return nil, false
	}
	var names []GeneralName
	for _, n := range ext.Value.Children {
		if gn, ok := parseGeneralName(n); ok {
			names = append(names, gn)
		}
	}
	return names, len(names) > 0
}

func parseGeneralName(n *asn1tree.Tag) (GeneralName, bool) {
	if n.Class() != asn1tree.ClassContextSpecific || n.TagNumber() > int(RegisteredID) {
		return GeneralName{}, false
	}
	gn := GeneralName{Kind: GeneralNameKind(n.TagNumber()), Node: n}
	var err error
	switch gn.Kind {
	case OtherName:
		if oidOf(n.Child(0)) == "" {
			return GeneralName{}, false
		}
		gn.ID, _ = oid.FromBytes(n.Child(0).Content, oid.Default)
		gn.Value, err = renderers.Render(firstLeaf(n.Child(1)))
	case RFC822Name, DNSName, URI:
		gn.Value, err = content.Latin1(n.Content)
	case X400Address:
		gn.Value, err = content.Base64(ber.Encode(n))
	case DirectoryName:
		gn.Value = distinguishedName(n.Child(0))
	case EDIPartyName:
		for _, c := range n.Children {
			if c.TagNumber() == 1 {
				gn.Value, err = renderers.Render(firstLeaf(c))
			}
		}
	case IPAddress:
		gn.Value = net.IP(n.Content).String()
	case RegisteredID:
		gn.ID, err = oid.FromBytes(n.Content, oid.Default)
		gn.Value = gn.ID.Value
	}
	if err != nil {
		return GeneralName{}, false
	}
	return gn, true
}

// firstLeaf descends into the first child of t until it reaches a node
// without children.
func firstLeaf(t *asn1tree.Tag) *asn1tree.Tag {
	for t != nil && len(t.Children) > 0 {
		t = t.Children[0]
	}
	return t
}

// distinguishedName renders a Name as type=value pairs. Types are written with
// their friendly name when it is known.
func distinguishedName(name *asn1tree.Tag) string {
	var parts []string
	name.Walk(func(n *asn1tree.Tag) bool {
		if n.Number != asn1tree.TagSet {
			return true
		}
		for _, atv := range n.Children {
			if oidOf(atv.Child(0)) == "" {
				continue
			}
			id, _ := oid.FromBytes(atv.Child(0).Content, oid.Default)
			v, err := renderers.Render(atv.Child(1))
			if err != nil {
				continue
			}
			key := id.FriendlyName
			if key == "" {
				key = id.Value
			}
			parts = append(parts, key+"="+v)
		}
		return false
	})
	return strings.Join(parts, ", ")
}
