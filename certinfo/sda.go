package certinfo

import (
	"strings"
	"time"

	"codello.dev/asn1tree"
)

// Attribute types of the SubjectDirectoryAttributes extension defined in
// RFC 3739, section 3.2.2.
const (
	OIDDateOfBirth          = "1.3.6.1.5.5.7.9.1"
	OIDPlaceOfBirth         = "1.3.6.1.5.5.7.9.2"
	OIDGender               = "1.3.6.1.5.5.7.9.3"
	OIDCountryOfCitizenship = "1.3.6.1.5.5.7.9.4"
	OIDCountryOfResidence   = "1.3.6.1.5.5.7.9.5"
)

// Gender is the value of the gender attribute.
type Gender byte

// Values of the gender attribute.
const (
	GenderUnknown Gender = 0
	Male          Gender = 'M'
	Female        Gender = 'F'
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unknown"
	}
}

// DirectoryAttributes holds the personal data attributes of a
// SubjectDirectoryAttributes extension.
type DirectoryAttributes struct {
	DateOfBirth          time.Time
	PlaceOfBirth         string
	Gender               Gender
	CountryOfCitizenship []string
	CountryOfResidence   []string
}

// SubjectDirectoryAttributes returns the attributes of the
// SubjectDirectoryAttributes extension of certificate or certificate request
// t. Attributes of other types and values that cannot be interpreted are
// ignored.
func SubjectDirectoryAttributes(t *asn1tree.Tag) (DirectoryAttributes, bool) {
	ext, ok := FindExtension(t, OIDSubjectDirectoryAttribute)
	if !ok || ext.Value.Number != asn1tree.TagSequence {
		return DirectoryAttributes{}, false
	}
	var da DirectoryAttributes
	for _, attr := range ext.Value.Children {
		values := attr.Child(1)
		if values == nil || values.Number != asn1tree.TagSet {
			continue
		}
		for _, v := range values.Children {
			switch oidOf(attr.Child(0)) {
			case OIDDateOfBirth:
				if ts, err := ParseTime(v); err == nil {
					da.DateOfBirth = ts
				}
			case OIDPlaceOfBirth:
				da.PlaceOfBirth, _ = renderers.Render(v)
			case OIDGender:
				s, _ := renderers.Render(v)
				switch strings.ToUpper(s) {
				case "M":
					da.Gender = Male
				case "F":
					da.Gender = Female
				}
			case OIDCountryOfCitizenship:
				if s, err := renderers.Render(v); err == nil {
					da.CountryOfCitizenship = append(da.CountryOfCitizenship, s)
				}
			case OIDCountryOfResidence:
				if s, err := renderers.Render(v); err == nil {
					da.CountryOfResidence = append(da.CountryOfResidence, s)
				}
			}
		}
	}
	return da, true
}
