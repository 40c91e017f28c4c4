// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"codello.dev/asn1tree"
)

// A DecodeOption configures a [Decoder].
type DecodeOption func(*Decoder)

// WithFactory sets the factory used to create tags. By default
// [asn1tree.DefaultFactory] is used.
func WithFactory(f asn1tree.Factory) DecodeOption {
	return func(d *Decoder) {
		if f != nil {
			d.factory = f
		}
	}
}

// WithLogger sets a logger that receives debug records about discarded
// encapsulation attempts. By default nothing is logged.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// A Decoder reads BER-encoded data values from a seekable input stream and
// builds [asn1tree.Tag] trees.
//
// Constructed values are decoded recursively. Definite-length containers bound
// their children: a child cannot extend past the end of its parent.
// Indefinite-length containers end at an end-of-contents marker which is
// consumed but not stored.
//
// Primitive universal BIT STRING and OCTET STRING values are probed for
// encapsulated encodings. If their content parses completely as a sequence of
// data values, these become the children of the tag. A BIT STRING is only
// probed if its first content octet (the number of unused bits) is zero. If the
// probe fails or yields an end-of-contents marker as a direct child, the
// decoder seeks back and the content is stored as-is. A failed probe is not an
// error. Children of a definite-length string are only kept if their encoding
// reproduces the original content octets exactly. An indefinite-length string
// is probed up to its end-of-contents marker and is an error only if the probe
// yields no children.
//
// A Decoder never closes its input stream.
type Decoder struct {
	r       io.ReadSeeker
	c       *cursor
	factory asn1tree.Factory
	logger  *slog.Logger
	err     error // sticky error
}

// NewDecoder creates a new [Decoder] reading from r. Decoding starts at the
// current position of r.
func NewDecoder(r io.ReadSeeker, opts ...DecodeOption) *Decoder {
	d := &Decoder{
		r:       r,
		factory: asn1tree.DefaultFactory,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the next top-level data value from the input. At the end of the
// input Decode returns io.EOF. If the input contains malformed data, a
// [*SyntaxError] is returned and all subsequent calls return the same error.
func (d *Decoder) Decode() (*asn1tree.Tag, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.c == nil {
		if d.c, d.err = newCursor(d.r); d.err != nil {
			return nil, d.err
		}
	}
	t, err := d.decodeValue(asn1tree.TagEOC)
	if err != nil && err != io.EOF {
		d.err = err
	}
	return t, err
}

// InputOffset returns the offset of the next data value relative to the
// position of the input when decoding started.
func (d *Decoder) InputOffset() int64 {
	if d.c == nil {
		return 0
	}
	return d.c.offset()
}

// decodeValue decodes the data value at the current position. within is the
// identifier octet of the enclosing container. If no bytes are left before the
// current limit, io.EOF is returned.
func (d *Decoder) decodeValue(within byte) (*asn1tree.Tag, error) {
	start := d.c.offset()
	b, err := d.c.readByte()
	if err != nil {
		return nil, err
	}
	t := d.factory.NewTag(b)
	if t == nil {
		t = asn1tree.DefaultFactory.NewTag(b)
	}
	wrap := func(err error) error {
		var se *SyntaxError
		if errors.As(err, &se) {
			return err
		}
		return &SyntaxError{Err: err, ByteOffset: start, Tag: within}
	}

	length, err := readLength(d.c)
	if err != nil {
		return nil, wrap(err)
	}

	if t.Kind.IsFixedConstructed() || b&0x20 != 0 {
		if err = d.decodeChildren(t, length); err != nil {
			return nil, wrap(err)
		}
		return t, nil
	}

	if (b == asn1tree.TagBitString || b == asn1tree.TagOctetString) && length != 0 {
		if t.Children, err = d.encapsulated(b, length); err != nil {
			return nil, wrap(err)
		}
		if len(t.Children) > 0 {
			return t, nil
		}
	}

	if length == LengthIndefinite {
		return nil, wrap(asn1tree.ErrIndefiniteLeaf)
	}
	if t.IsEOC() && length != 0 {
		return nil, wrap(&kindError{asn1tree.ErrMisalignedContainer, errInvalidEOC})
	}
	if d.c.remaining() < length {
		return nil, wrap(d.c.overrun(length, asn1tree.ErrTruncatedContent))
	}
	if t.Content, err = d.c.read(length); err != nil {
		return nil, wrap(err)
	}
	return t, nil
}

// decodeChildren decodes the content of the constructed value t.
func (d *Decoder) decodeChildren(t *asn1tree.Tag, length int64) error {
	if length == LengthIndefinite {
		for {
			child, err := d.decodeValue(t.Number)
			if err == io.EOF {
				return asn1tree.ErrMisalignedContainer
			} else if err != nil {
				return err
			}
			if child.IsEOC() {
				return nil
			}
			t.Children = append(t.Children, child)
		}
	}

	if d.c.remaining() < length {
		return asn1tree.ErrMisalignedContainer
	}
	end := d.c.mark() + length
	d.c.push(end)
	defer d.c.pop()
	for d.c.mark() < end {
		child, err := d.decodeValue(t.Number)
		if err != nil {
			return noEOF(err)
		}
		t.Children = append(t.Children, child)
	}
	return nil
}

// encapsulated probes the content of a primitive BIT STRING or OCTET STRING
// for encapsulated data values. If the probe fails, the cursor is reset and nil
// is returned. Only errors of the underlying stream are returned.
func (d *Decoder) encapsulated(b byte, length int64) ([]*asn1tree.Tag, error) {
	mark := d.c.mark()
	children, err := d.probe(b, length)
	if err == nil && len(children) > 0 {
		return children, nil
	}
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return nil, err
	}
	if err != nil {
		d.logger.LogAttrs(context.Background(), slog.LevelDebug, "encapsulation probe discarded",
			slog.Int64("offset", mark-d.c.base),
			slog.String("tag", asn1tree.DefaultFactory.NewTag(b).Name()),
			slog.Int64("length", length),
			slog.Any("reason", err))
	}
	return nil, d.c.reset(mark)
}

func (d *Decoder) probe(b byte, length int64) ([]*asn1tree.Tag, error) {
	if length == LengthIndefinite {
		return d.probeIndefinite(b)
	}
	if d.c.remaining() < length {
		return nil, asn1tree.ErrTruncatedContent
	}
	start := d.c.mark()
	end := start + length
	if err := d.probeUnused(b); err != nil {
		return nil, err
	}

	d.c.push(end)
	var children []*asn1tree.Tag
	for d.c.mark() < end {
		child, err := d.decodeValue(b)
		if err != nil {
			d.c.pop()
			return nil, err
		}
		if child.IsEOC() {
			d.c.pop()
			return nil, &kindError{asn1tree.ErrInvalidEncoding, errEncapsulatedEOC}
		}
		children = append(children, child)
	}
	d.c.pop()

	// Encode must reproduce the content, otherwise the octets would change.
	want := make([]byte, 0, length)
	if b == asn1tree.TagBitString {
		want = append(want, 0)
	}
	for _, child := range children {
		want = Append(want, child)
	}
	if int64(len(want)) != length {
		return nil, &kindError{asn1tree.ErrInvalidEncoding, errNonCanonical}
	}
	if err := d.c.reset(start); err != nil {
		return nil, err
	}
	got, err := d.c.read(length)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(got, want) {
		return nil, &kindError{asn1tree.ErrInvalidEncoding, errNonCanonical}
	}
	return children, nil
}

// probeIndefinite decodes children of an indefinite-length primitive string up
// to and including the end-of-contents marker.
func (d *Decoder) probeIndefinite(b byte) ([]*asn1tree.Tag, error) {
	if err := d.probeUnused(b); err != nil {
		return nil, err
	}
	var children []*asn1tree.Tag
	for {
		child, err := d.decodeValue(b)
		if err == io.EOF {
			return nil, asn1tree.ErrMisalignedContainer
		} else if err != nil {
			return nil, err
		}
		if child.IsEOC() {
			return children, nil
		}
		children = append(children, child)
	}
}

// probeUnused consumes the unused-bits octet of a BIT STRING.
func (d *Decoder) probeUnused(b byte) error {
	if b != asn1tree.TagBitString {
		return nil
	}
	unused, err := d.c.readByte()
	if err == io.EOF {
		return asn1tree.ErrTruncatedContent
	} else if err != nil {
		return err
	}
	if unused != 0 {
		return &kindError{asn1tree.ErrInvalidEncoding, errNonZeroUnused}
	}
	return nil
}
