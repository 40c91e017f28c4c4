package content

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode/utf8"

	"codello.dev/asn1tree/oid"
)

// Base64 renders content in standard base64 encoding. It is used for all
// values without a more specific renderer.
func Base64(content []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(content), nil
}

// Boolean renders a single 0xFF octet as "True" and anything else as "False".
func Boolean(content []byte) (string, error) {
	if len(content) == 1 && content[0] == 0xff {
		return "True", nil
	}
	return "False", nil
}

// Integer renders the content octets in decimal. The content is read as an
// unsigned big-endian magnitude, so that certificate serial numbers with the
// high bit set render as positive values. Empty content is invalid.
func Integer(content []byte) (string, error) {
	if len(content) == 0 {
		return "", &Error{Type: "INTEGER", Msg: "empty content"}
	}
	return new(big.Int).SetBytes(content).String(), nil
}

// BitString renders the bits of a BIT STRING as a string of '0' and '1'
// characters. The first content octet is the number of unused bits in the
// final octet. These bits are omitted.
func BitString(content []byte) (string, error) {
	if len(content) == 0 {
		return "", &Error{Type: "BIT STRING", Msg: "missing unused bits octet"}
	}
	unused := int(content[0])
	if unused > 7 {
		return "", &Error{Type: "BIT STRING", Msg: "unused bits must be between 0 and 7"}
	}
	data := content[1:]
	if len(data) == 0 {
		if unused != 0 {
			return "", &Error{Type: "BIT STRING", Msg: "empty bit string with unused bits"}
		}
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(len(data)*8 - unused)
	for i, b := range data {
		skip := 0
		if i == len(data)-1 {
			skip = unused
		}
		for j := 7; j >= skip; j-- {
			sb.WriteByte('0' + b>>j&1)
		}
	}
	return sb.String(), nil
}

// OctetString renders content as UTF-8 text. If the content is not valid
// UTF-8 or contains a control character other than tab, line feed or carriage
// return, it is rendered as uppercase hexadecimal digits instead.
func OctetString(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return hexUpper(content), nil
	}
	for _, r := range string(content) {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return hexUpper(content), nil
		}
	}
	return string(content), nil
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Null renders every content as the empty string.
func Null([]byte) (string, error) {
	return "", nil
}

// OID returns a renderer for OBJECT IDENTIFIER content. The renderer produces
// the dotted decimal value followed by the friendly name and comment found in
// dict, e.g. "2.5.4.3, commonName (X.520 DN component)". dict may be nil.
func OID(dict oid.Dictionary) Renderer {
	return func(content []byte) (string, error) {
		o, err := oid.FromBytes(content, dict)
		if err != nil {
			return "", &Error{Type: "OBJECT IDENTIFIER", Msg: "cannot decode", Err: err}
		}
		return o.Description(), nil
	}
}
