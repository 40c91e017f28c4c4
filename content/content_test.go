package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/oid"
)

func TestRenderers(t *testing.T) {
	tests := map[string]struct {
		r       Renderer
		content []byte
		want    string
	}{
		"BooleanTrue":           {Boolean, []byte{0xFF}, "True"},
		"BooleanOne":            {Boolean, []byte{0x01}, "False"},
		"BooleanEmpty":          {Boolean, nil, "False"},
		"BooleanLong":           {Boolean, []byte{0xFF, 0xFF}, "False"},
		"IntegerSmall":          {Integer, []byte{0x05}, "5"},
		"IntegerZero":           {Integer, []byte{0x00}, "0"},
		"IntegerHighBit":        {Integer, []byte{0xFF}, "255"},
		"IntegerSerial":         {Integer, []byte{0x01, 0xA8, 0xB6}, "108726"},
		"IntegerBig":            {Integer, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, "18446744073709551616"},
		"BitStringFull":         {BitString, []byte{0x00, 0xA5}, "10100101"},
		"BitStringUnused":       {BitString, []byte{0x05, 0xA0}, "101"},
		"BitStringTwoOctets":    {BitString, []byte{0x07, 0xFF, 0x80}, "111111111"},
		"BitStringEmpty":        {BitString, []byte{0x00}, ""},
		"OctetStringText":       {OctetString, []byte("hello\tworld\r\n"), "hello\tworld\r\n"},
		"OctetStringControl":    {OctetString, []byte{0x68, 0x01}, "6801"},
		"OctetStringBinary":     {OctetString, []byte{0xCA, 0x27, 0x0A, 0xEE}, "CA270AEE"},
		"OctetStringEmpty":      {OctetString, nil, ""},
		"Null":                  {Null, []byte{0x01}, ""},
		"OIDKnown":              {OID(oid.Default), []byte{0x55, 0x04, 0x03}, "2.5.4.3, commonName (X.520 DN component)"},
		"OIDUnknown":            {OID(oid.Default), []byte{0x2A, 0x03}, "1.2.3"},
		"OIDNoDictionary":       {OID(nil), []byte{0x55, 0x04, 0x03}, "2.5.4.3"},
		"UTF8String":            {UTF8String, []byte("Grüße"), "Grüße"},
		"UTF8StringInvalid":     {UTF8String, []byte{0x41, 0xFF}, "A�"},
		"Latin1":                {Latin1, []byte("CZ"), "CZ"},
		"Latin1High":            {Latin1, []byte{0x47, 0x72, 0xFC, 0xDF, 0x65}, "Grüße"},
		"BMPString":             {BMPString, []byte{0x00, 0x47, 0x00, 0xFC}, "Gü"},
		"UniversalString":       {UniversalString, []byte{0x00, 0x00, 0x00, 0x47, 0x00, 0x01, 0xF6, 0x00}, "G\U0001F600"},
		"Base64":                {Base64, []byte{0x00, 0x01, 0x02}, "AAEC"},
		"UTCTime":               {UTCTime, []byte("240815202101Z"), "2024-08-15 20:21:01 UTC"},
		"UTCTimePivot":          {UTCTime, []byte("700101000000Z"), "1970-01-01 00:00:00 UTC"},
		"UTCTimeBeforePivot":    {UTCTime, []byte("691231235959Z"), "2069-12-31 23:59:59 UTC"},
		"GeneralizedTime":       {GeneralizedTime, []byte("20250702190327Z"), "2025-07-02 19:03:27 UTC"},
		"GeneralizedTimeFrac":   {GeneralizedTime, []byte("20250702190327.123Z"), "2025-07-02 19:03:27 UTC"},
		"GeneralizedTimeLocal":  {GeneralizedTime, []byte("19900101120000"), "1990-01-01 12:00:00"},
		"GeneralizedTimeOffset": {GeneralizedTime, []byte("19900101120000-0100"), "1990-01-01 12:00:00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.r(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderers_Invalid(t *testing.T) {
	tests := map[string]struct {
		r       Renderer
		content []byte
	}{
		"IntegerEmpty":           {Integer, nil},
		"BitStringEmpty":         {BitString, nil},
		"BitStringUnused8":       {BitString, []byte{0x08, 0xFF}},
		"BitStringOnlyUnused":    {BitString, []byte{0x03}},
		"OIDEmpty":               {OID(oid.Default), nil},
		"OIDUnterminated":        {OID(oid.Default), []byte{0x81}},
		"UTCTimeShort":           {UTCTime, []byte("2408152021Z")},
		"UTCTimeLetters":         {UTCTime, []byte("24AB15202101Z")},
		"UTCTimeMonth":           {UTCTime, []byte("241315202101Z")},
		"UTCTimeDay":             {UTCTime, []byte("240431202101Z")},
		"UTCTimeHour":            {UTCTime, []byte("240430242101Z")},
		"GeneralizedTimeShort":   {GeneralizedTime, []byte("202507021903Z")},
		"GeneralizedTimeLetters": {GeneralizedTime, []byte("2025070219032XZ")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.r(tt.content)
			assert.ErrorIs(t, err, asn1tree.ErrInvalidEncoding)
			var e *Error
			assert.ErrorAs(t, err, &e)
		})
	}
}

func TestTable_Render(t *testing.T) {
	table := Default()
	tests := map[string]struct {
		tag  *asn1tree.Tag
		want string
	}{
		"Integer":         {asn1tree.NewInteger(42), "42"},
		"Null":            {asn1tree.NewNull(), ""},
		"ContextSpecific": {asn1tree.New(0x80, []byte{0x01, 0x02}), "0102"},
		"DNSName":         {asn1tree.New(0x82, []byte("example.com")), "example.com"},
		"Application":     {asn1tree.New(0x41, []byte{0x01, 0x02}), "AQI="},
		"Teletex":         {asn1tree.New(asn1tree.TagTeletexString, []byte("ab")), "YWI="},
		"Unknown":         {asn1tree.New(0x1F, []byte{0xFF}), "/w=="},
		"WithChildren":    {asn1tree.NewSequence(asn1tree.NewNull()), ""},
		"Nil":             {nil, ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := table.Render(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_Copy(t *testing.T) {
	a := Default()
	a[asn1tree.TagInteger] = Base64
	delete(a, asn1tree.TagBoolean)

	b := Default()
	got, err := b.Render(asn1tree.NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Contains(t, b, byte(asn1tree.TagBoolean))
}

func TestNewTable(t *testing.T) {
	r := oid.NewRegistry()
	require.NoError(t, r.Register("1.2.3", "test", "custom"))
	table := NewTable(r)
	got, err := table.Render(asn1tree.NewObjectIdentifier([]byte{0x2A, 0x03}))
	require.NoError(t, err)
	assert.Equal(t, "1.2.3, test (custom)", got)

	got, err = table.Render(asn1tree.NewObjectIdentifier([]byte{0x55, 0x04, 0x03}))
	require.NoError(t, err)
	assert.Equal(t, "2.5.4.3", got)
}

func TestTable_Lookup(t *testing.T) {
	table := Table{asn1tree.TagInteger: nil}
	got, err := table.Lookup(asn1tree.TagInteger)([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "AQ==", got)
}
