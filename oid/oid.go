// Package oid implements the content encoding of ASN.1 OBJECT IDENTIFIER values
// and a dictionary of well-known identifiers.
//
// An object identifier is written in dotted decimal notation, e.g.
// "1.2.840.113549.1.1.11". The content octets of its BER encoding consist of
// base-128 subidentifiers where the first subidentifier combines the first two
// arcs as 40*X+Y.
package oid

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/internal/vlq"
)

// Error wraps one of the error kinds of the asn1tree package with a
// description of the offending input.
type Error struct {
	Err   error // asn1tree.ErrInvalidArgument or asn1tree.ErrInvalidEncoding
	Input string
	Msg   string
}

func (e *Error) Unwrap() error { return e.Err }
func (e *Error) Error() string {
	b := []byte("oid: ")
	b = append(b, e.Msg...)
	if e.Input != "" {
		b = strconv.AppendQuote(append(b, ": "...), e.Input)
	}
	return string(b)
}

func argumentError(input, msg string) error {
	return &Error{Err: asn1tree.ErrInvalidArgument, Input: input, Msg: msg}
}

// Encode converts the dotted decimal object identifier s into the content
// octets of its BER encoding.
//
// s must consist of at least two numeric components separated by dots. The
// first component must be 0, 1 or 2. If the first component is 0 or 1, the
// second component must be less than 40. An invalid s results in an error
// wrapping [asn1tree.ErrInvalidArgument].
func Encode(s string) ([]byte, error) {
	if strings.TrimSpace(s) == "" {
		return nil, argumentError(s, "empty object identifier")
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, argumentError(s, "object identifier needs at least two components")
	}
	arcs := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, argumentError(s, "invalid component")
		}
		arcs[i] = v
	}
	if arcs[0] > 2 {
		return nil, argumentError(s, "first component must be 0, 1 or 2")
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return nil, argumentError(s, "second component must be less than 40")
	}
	if arcs[1] > math.MaxUint64-80 {
		return nil, argumentError(s, "second component too large")
	}

	b := make([]byte, 0, len(parts)+4)
	b = vlq.Append(b, arcs[0]*40+arcs[1])
	for _, a := range arcs[2:] {
		b = vlq.Append(b, a)
	}
	return b, nil
}

// Decode converts the content octets of an encoded object identifier into
// dotted decimal notation.
//
// The first subidentifier X is split into two components: values up to 79
// become X/40 and X%40, larger values become 2 and X-80. A final subidentifier
// that is missing its terminating octet is ignored. Empty input results in an
// error wrapping [asn1tree.ErrInvalidArgument]. Subidentifiers exceeding 64
// bits result in an error wrapping [asn1tree.ErrInvalidEncoding].
func Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", argumentError("", "empty object identifier")
	}
	r := bytes.NewReader(b)
	first, err := vlq.Read[uint64](r)
	if err != nil {
		return "", decodeError(b, err)
	}

	var sb strings.Builder
	sb.Grow(len(b) * 3)
	if first > 79 {
		sb.WriteString("2.")
		sb.WriteString(strconv.FormatUint(first-80, 10))
	} else {
		sb.WriteString(strconv.FormatUint(first/40, 10))
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatUint(first%40, 10))
	}
	for r.Len() > 0 {
		v, err := vlq.Read[uint64](r)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		} else if err != nil {
			return "", decodeError(b, err)
		}
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	return sb.String(), nil
}

func decodeError(b []byte, err error) error {
	msg := "malformed subidentifier"
	if errors.Is(err, vlq.ErrOverflow) {
		msg = "subidentifier too large"
	}
	return &Error{Err: asn1tree.ErrInvalidEncoding, Input: strings.ToUpper(hex.EncodeToString(b)), Msg: msg}
}

// OID is an object identifier together with its encoding and the descriptive
// names found in a [Dictionary].
type OID struct {
	Value        string // dotted decimal notation
	Bytes        []byte // content octets
	FriendlyName string
	Comment      string
}

// FromString returns the OID for the dotted decimal value s. Names are taken
// from dict. If dict is nil, no names are filled in.
func FromString(s string, dict Dictionary) (OID, error) {
	b, err := Encode(s)
	if err != nil {
		return OID{}, err
	}
	return newOID(s, b, dict), nil
}

// FromBytes returns the OID for the encoded content octets b. Names are taken
// from dict. If dict is nil, no names are filled in.
func FromBytes(b []byte, dict Dictionary) (OID, error) {
	s, err := Decode(b)
	if err != nil {
		return OID{}, err
	}
	return newOID(s, b, dict), nil
}

func newOID(s string, b []byte, dict Dictionary) OID {
	o := OID{Value: s, Bytes: b}
	if dict != nil {
		if e, ok := dict.Lookup(s); ok {
			o.FriendlyName = e.Name
			o.Comment = e.Comment
		}
	}
	return o
}

// String returns the dotted decimal value of o.
func (o OID) String() string {
	return o.Value
}

// Description returns the dotted decimal value of o, followed by ", " and the
// friendly name and " (comment)" if they are set.
func (o OID) Description() string {
	s := o.Value
	if o.FriendlyName != "" {
		s += ", " + o.FriendlyName
	}
	if o.Comment != "" {
		s += " (" + o.Comment + ")"
	}
	return s
}

// Equal reports whether o and other denote the same object identifier.
func (o OID) Equal(other OID) bool {
	return o.Value == other.Value
}
