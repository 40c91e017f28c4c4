package content

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	latin1Decoder    = charmap.ISO8859_1
	bmpDecoder       = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	universalDecoder = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

// UTF8String renders content as UTF-8 text. Invalid sequences are replaced by
// U+FFFD.
func UTF8String(content []byte) (string, error) {
	return strings.ToValidUTF8(string(content), "�"), nil
}

// Latin1 renders content in the ISO 8859-1 character set. ASCII-based string
// types such as PrintableString and IA5String use this renderer.
func Latin1(content []byte) (string, error) {
	return decode(latin1Decoder, content)
}

// BMPString renders content as big-endian UTF-16.
func BMPString(content []byte) (string, error) {
	return decode(bmpDecoder, content)
}

// UniversalString renders content as big-endian UTF-32.
func UniversalString(content []byte) (string, error) {
	return decode(universalDecoder, content)
}

func decode(enc encoding.Encoding, content []byte) (string, error) {
	b, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &Error{Type: "string", Msg: "cannot decode", Err: err}
	}
	return string(b), nil
}
