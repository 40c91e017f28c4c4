// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/asn1tree"
)

func mustTag(t *asn1tree.Tag, err error) *asn1tree.Tag {
	if err != nil {
		panic(err)
	}
	return t
}

func TestEncode(t *testing.T) {
	long := bytes.Repeat([]byte{0x41}, 200)
	tests := map[string]struct {
		tag  *asn1tree.Tag
		want []byte
	}{
		"Integer":         {asn1tree.NewInteger(5), []byte{0x02, 0x01, 0x05}},
		"NegativeInteger": {asn1tree.NewInteger(-129), []byte{0x02, 0x02, 0xFF, 0x7F}},
		"Boolean":         {asn1tree.NewBoolean(true), []byte{0x01, 0x01, 0xFF}},
		"Null":            {asn1tree.NewNull(), []byte{0x05, 0x00}},
		"EmptySequence":   {asn1tree.NewSequence(), []byte{0x30, 0x00}},
		"EmptySet":        {asn1tree.NewSet(), []byte{0x31, 0x00}},
		"EmptyContext":    {mustTag(asn1tree.NewContextSpecific(0, true)), []byte{0xA0, 0x00}},
		"Sequence":        {asn1tree.NewSequence(asn1tree.NewInteger(1), asn1tree.NewInteger(2)), []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}},
		"Explicit":        {asn1tree.NewSequence(mustTag(asn1tree.NewContextSpecific(2, true, asn1tree.NewInteger(2)))), []byte{0x30, 0x05, 0xA2, 0x03, 0x02, 0x01, 0x02}},
		"String":          {mustTag(asn1tree.NewUTF8String("Test User 1")), []byte{0x0C, 0x0B, 0x54, 0x65, 0x73, 0x74, 0x20, 0x55, 0x73, 0x65, 0x72, 0x20, 0x31}},
		"BitStringLeaf":   {mustTag(asn1tree.NewBitString(4, []byte{0xF0})), []byte{0x03, 0x02, 0x04, 0xF0}},
		"BitStringChild":  {&asn1tree.Tag{Number: asn1tree.TagBitString, Kind: asn1tree.KindBitString, Children: []*asn1tree.Tag{asn1tree.NewNull()}}, []byte{0x03, 0x03, 0x00, 0x05, 0x00}},
		"OctetStringWrap": {&asn1tree.Tag{Number: asn1tree.TagOctetString, Kind: asn1tree.KindOctetString, Children: []*asn1tree.Tag{asn1tree.NewNull()}}, []byte{0x04, 0x02, 0x05, 0x00}},
		"ChildrenWin":     {&asn1tree.Tag{Number: asn1tree.TagSequence, Kind: asn1tree.KindSequence, Content: []byte{0xFF}, Children: []*asn1tree.Tag{asn1tree.NewNull()}}, []byte{0x30, 0x02, 0x05, 0x00}},
		"UTCTime":         {mustTag(asn1tree.NewUTCTime(time.Date(2024, 8, 15, 20, 21, 1, 0, time.UTC))), append([]byte{0x17, 0x0D}, "240815202101Z"...)},
		"LongContent":     {asn1tree.NewOctetString(long), append([]byte{0x04, 0x81, 0xC8}, long...)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Encode(tt.tag)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), EncodedLen(tt.tag))
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	assert.Nil(t, Encode(nil))
	assert.Equal(t, 0, EncodedLen(nil))
	assert.Equal(t, []byte{0x30, 0x00}, Append(nil, asn1tree.NewSequence(nil)))
}

func TestEncode_RoundTrip(t *testing.T) {
	tree := asn1tree.NewSequence(
		asn1tree.NewInteger(1<<40),
		asn1tree.NewSet(),
		asn1tree.NewOctetString([]byte("hello")),
		mustTag(asn1tree.NewBitString(0, []byte{0x02, 0x01, 0x05})),
		asn1tree.NewGeneralizedTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
		mustTag(asn1tree.NewBMPString("Grüße")),
	)
	b := Encode(tree)
	got, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, got.Children, len(tree.Children))
	assert.Equal(t, b, Encode(got))
	// the BIT STRING content parses as an INTEGER
	assert.Equal(t, asn1tree.KindInteger, got.Path(3, 0).Kind)
}

func TestEncoder_Encode(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.Encode(asn1tree.NewInteger(1)))
	require.NoError(t, e.Encode(asn1tree.NewNull()))
	assert.Equal(t, []byte{0x02, 0x01, 0x01, 0x05, 0x00}, buf.Bytes())

	err := e.Encode(nil)
	assert.ErrorIs(t, err, asn1tree.ErrInvalidArgument)
	var ee *EncodeError
	assert.True(t, errors.As(err, &ee))
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestEncoder_ShortWrite(t *testing.T) {
	err := NewEncoder(shortWriter{}).Encode(asn1tree.NewNull())
	assert.Error(t, err)
}
