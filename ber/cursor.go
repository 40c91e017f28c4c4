// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"

	"codello.dev/asn1tree"
)

// cursor reads from a seekable stream and keeps track of the current offset. A
// cursor maintains a stack of limits: reads never go past the innermost limit,
// so that nested values cannot consume bytes belonging to an enclosing value.
// The outermost limit is the end of the stream.
//
// A cursor supports transactions via mark and reset. Resetting seeks the
// underlying stream back to a previous offset.
type cursor struct {
	r      io.ReadSeeker
	base   int64   // offset of the stream when the cursor was created
	pos    int64   // current offset in the stream
	end    int64   // end of the stream
	limits []int64 // innermost limit last
	buf    [1]byte
}

// newCursor creates a cursor reading from the current position of r to the end
// of r. The position of r is preserved.
func newCursor(r io.ReadSeeker) (*cursor, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &ioError{"seek", err}
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &ioError{"seek", err}
	}
	if _, err = r.Seek(start, io.SeekStart); err != nil {
		return nil, &ioError{"seek", err}
	}
	return &cursor{r: r, base: start, pos: start, end: end}, nil
}

// limit returns the innermost limit of c.
func (c *cursor) limit() int64 {
	if len(c.limits) == 0 {
		return c.end
	}
	return c.limits[len(c.limits)-1]
}

// remaining returns the number of bytes that can be read before the innermost
// limit is reached.
func (c *cursor) remaining() int64 {
	return c.limit() - c.pos
}

// offset returns the current position relative to the start of the cursor.
func (c *cursor) offset() int64 {
	return c.pos - c.base
}

// push restricts reads to offsets before end. end must not exceed the current
// limit.
func (c *cursor) push(end int64) {
	c.limits = append(c.limits, end)
}

// pop removes the innermost limit.
func (c *cursor) pop() {
	c.limits = c.limits[:len(c.limits)-1]
}

// mark returns the current position to be used with reset.
func (c *cursor) mark() int64 {
	return c.pos
}

// reset moves c back to a position previously returned by mark.
func (c *cursor) reset(pos int64) error {
	if pos == c.pos {
		return nil
	}
	if _, err := c.r.Seek(pos, io.SeekStart); err != nil {
		return &ioError{"seek", err}
	}
	c.pos = pos
	return nil
}

// readByte reads the next byte. At the innermost limit io.EOF is returned.
func (c *cursor) readByte() (byte, error) {
	if c.remaining() <= 0 {
		return 0, io.EOF
	}
	if _, err := io.ReadFull(c.r, c.buf[:]); err != nil {
		return 0, &ioError{"read", noEOF(err)}
	}
	c.pos++
	return c.buf[0], nil
}

// read reads exactly n bytes. The caller must ensure that n does not exceed
// c.remaining().
func (c *cursor) read(n int64) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.r, b); err != nil {
		return nil, &ioError{"read", noEOF(err)}
	}
	c.pos += n
	return b, nil
}

// overrun returns the error kind for an attempt to read beyond the innermost
// limit. If the read would also go beyond the end of the stream, atEnd is
// returned. Otherwise the value overruns its enclosing container.
func (c *cursor) overrun(n int64, atEnd error) error {
	if c.pos+n > c.end {
		return atEnd
	}
	return asn1tree.ErrMisalignedContainer
}
