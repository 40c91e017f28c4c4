package certinfo

import "codello.dev/asn1tree"

// SubjectItemKind identifies an attribute of a distinguished name.
type SubjectItemKind uint8

// Attributes of distinguished names that can be looked up by kind.
const (
	CommonName SubjectItemKind = iota
	GivenName
	Surname
	Country
	Organization
	OrganizationalUnit
	OrganizationIdentifier
	State
	Locality
	Street
	PostalCode
	SerialNumberAttr
	Title
)

var subjectItemOIDs = [...]string{
	CommonName:             "2.5.4.3",
	GivenName:              "2.5.4.42",
	Surname:                "2.5.4.4",
	Country:                "2.5.4.6",
	Organization:           "2.5.4.10",
	OrganizationalUnit:     "2.5.4.11",
	OrganizationIdentifier: "2.5.4.97",
	State:                  "2.5.4.8",
	Locality:               "2.5.4.7",
	Street:                 "2.5.4.9",
	PostalCode:             "2.5.4.17",
	SerialNumberAttr:       "2.5.4.5",
	Title:                  "2.5.4.12",
}

// OID returns the attribute type of k in dotted decimal notation, or an
// empty string if k is not a known kind.
func (k SubjectItemKind) OID() string {
	if int(k) >= len(subjectItemOIDs) {
		return ""
	}
	return subjectItemOIDs[k]
}

// SubjectItems returns the values of all attributes of the given kind in the
// subject of certificate t, or in its issuer if issuer is true. The second
// return value reports whether any value was found.
func SubjectItems(t *asn1tree.Tag, kind SubjectItemKind, issuer bool) ([]string, bool) {
	return SubjectItemsByOID(t, kind.OID(), issuer)
}

// SubjectItemsByOID is like [SubjectItems] but selects attributes by their
// type in dotted decimal notation.
func SubjectItemsByOID(t *asn1tree.Tag, id string, issuer bool) ([]string, bool) {
	if !IsCertificate(t) || id == "" {
		return nil, false
	}
	name := t.Path(0, 5)
	if issuer {
		name = t.Path(0, 3)
	}
	return nameItems(name, id)
}

// RequestSubjectItems returns the values of all attributes of the given kind
// in the subject of certificate request t.
func RequestSubjectItems(t *asn1tree.Tag, kind SubjectItemKind) ([]string, bool) {
	return RequestSubjectItemsByOID(t, kind.OID())
}

// RequestSubjectItemsByOID is like [RequestSubjectItems] but selects
// attributes by their type in dotted decimal notation.
func RequestSubjectItemsByOID(t *asn1tree.Tag, id string) ([]string, bool) {
	if !IsCertificateRequest(t) || id == "" {
		return nil, false
	}
	return nameItems(t.Path(0, 1), id)
}

// nameItems collects the values of id in a Name. Relative distinguished names
// are SETs of SEQUENCE { type, value }. Multi-valued names are supported.
func nameItems(name *asn1tree.Tag, id string) ([]string, bool) {
	var items []string
	name.Walk(func(n *asn1tree.Tag) bool {
		if n.Number != asn1tree.TagSet {
			return true
		}
		for _, atv := range n.Children {
			if atv.Number != asn1tree.TagSequence || len(atv.Children) != 2 {
				continue
			}
			if oidOf(atv.Child(0)) != id {
				continue
			}
			if v, err := renderers.Render(atv.Child(1)); err == nil {
				items = append(items, v)
			}
		}
		return false
	})
	return items, len(items) > 0
}
