// Package pretty renders [asn1tree.Tag] trees as indented text.
//
// Each node is printed on its own line, built from a template with
// placeholders for the indentation, the tag name, a separator and the
// rendered content. Children follow their parent on subsequent lines, one
// level deeper:
//
//	Sequence
//	 | INTEGER 5
//	 | UTF8String hello
//
// The content of leaf nodes is rendered by a [content.Table]. Content longer
// than the configured maximum line length is truncated or wrapped onto
// continuation lines, see [Mode].
package pretty

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/certinfo"
	"codello.dev/asn1tree/content"
	"codello.dev/asn1tree/oid"
)

// Print renders t using opts. If opts is nil, [DefaultOptions] are used.
func Print(t *asn1tree.Tag, opts *Options) (string, error) {
	p, err := NewPrinter(opts)
	if err != nil {
		return "", err
	}
	return p.Print(t)
}

// Fprint renders t using opts and writes the result to w. Nothing is written
// if rendering fails.
func Fprint(w io.Writer, t *asn1tree.Tag, opts *Options) error {
	p, err := NewPrinter(opts)
	if err != nil {
		return err
	}
	return p.Fprint(w, t)
}

// segment is a part of a parsed line template. A segment is either literal
// text or one of the placeholders.
type segment struct {
	text string
	kind placeholder
}

type placeholder uint8

const (
	literal placeholder = iota
	indentation
	tagName
	separator
	tagContent
)

var placeholders = [...]struct {
	name string
	kind placeholder
}{
	{PlaceholderIndentation, indentation},
	{PlaceholderTagName, tagName},
	{PlaceholderSeparator, separator},
	{PlaceholderContent, tagContent},
}

// parseFormat splits format into literal text and placeholders.
func parseFormat(format string) []segment {
	var segs []segment
	for format != "" {
		pos, match := -1, 0
		for i, ph := range placeholders {
			if j := strings.Index(format, ph.name); j >= 0 && (pos < 0 || j < pos) {
				pos, match = j, i
			}
		}
		if pos < 0 {
			segs = append(segs, segment{text: format})
			break
		}
		if pos > 0 {
			segs = append(segs, segment{text: format[:pos]})
		}
		segs = append(segs, segment{kind: placeholders[match].kind})
		format = format[pos+len(placeholders[match].name):]
	}
	return segs
}

// A Printer renders trees with a fixed set of options. A Printer is safe for
// concurrent use.
type Printer struct {
	opts     Options
	segments []segment
}

// NewPrinter validates opts and returns a [Printer] using them. If opts is nil,
// [DefaultOptions] are used. The options are copied.
func NewPrinter(opts *Options) (*Printer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := &Printer{opts: *opts, segments: parseFormat(opts.Format)}
	if p.opts.Strategies == nil {
		p.opts.Strategies = content.Default()
	}
	return p, nil
}

// Print renders t. Lines are separated by a single newline. There is no
// trailing newline.
func (p *Printer) Print(t *asn1tree.Tag) (string, error) {
	if t == nil {
		return "", &OptionError{Option: "tree", Msg: "nil tag"}
	}
	s := &state{p: p}
	if _, err := s.print(t, 0, ""); err != nil {
		return "", err
	}
	return s.b.String(), nil
}

// Fprint renders t and writes the result to w in a single write.
func (p *Printer) Fprint(w io.Writer, t *asn1tree.Tag) error {
	s, err := p.Print(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// state holds the output and the indentation cache of a single Print call.
type state struct {
	p       *Printer
	b       strings.Builder
	indents []string
}

// indent returns the indentation for the given level.
func (s *state) indent(level int) string {
	for len(s.indents) <= level {
		s.indents = append(s.indents, strings.Repeat(s.p.opts.Indentation, len(s.indents)))
	}
	return s.indents[level]
}

// print renders t and its descendants. lastOID is the value of the last
// OBJECT IDENTIFIER printed before t in pre-order. The updated value is
// returned.
func (s *state) print(t *asn1tree.Tag, level int, lastOID string) (string, error) {
	opts := &s.p.opts
	text, err := s.content(t, lastOID)
	if err != nil {
		return lastOID, &RenderError{Tag: t.Name(), Level: level, Err: err}
	}
	text = s.fit(text, s.indent(level+1))

	name, sep := t.Name(), ""
	if text != "" {
		if opts.IncludeTagNameForContentTags {
			sep = opts.Separator
		} else {
			name = ""
		}
	}
	for _, seg := range s.p.segments {
		switch seg.kind {
		case literal:
			s.b.WriteString(seg.text)
		case indentation:
			s.b.WriteString(s.indent(level))
		case tagName:
			s.b.WriteString(name)
		case separator:
			s.b.WriteString(sep)
		case tagContent:
			s.b.WriteString(text)
		}
	}

	if t.Number == asn1tree.TagOID {
		lastOID, _ = oid.Decode(t.Content)
	}
	for _, c := range t.Children {
		s.b.WriteByte('\n')
		if lastOID, err = s.print(c, level+1, lastOID); err != nil {
			return lastOID, err
		}
	}
	return lastOID, nil
}

// content renders the content of t.
func (s *state) content(t *asn1tree.Tag, lastOID string) (string, error) {
	if s.p.opts.ConvertKeyUsage && t.Number == asn1tree.TagBitString &&
		len(t.Children) == 0 && lastOID == certinfo.OIDKeyUsage {
		if ku, err := certinfo.KeyUsageFromBitString(t.Content); err == nil {
			return ku.String(), nil
		}
	}
	return s.p.opts.Strategies.Render(t)
}

// fit applies the line length limit to text. cont is the indentation of
// continuation lines.
func (s *state) fit(text, cont string) string {
	opts := &s.p.opts
	limit := opts.MaxLineLength
	if limit < 1 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	var r string
	switch opts.Mode {
	case Truncate:
		n := limit - utf8.RuneCountInString(opts.TruncateMarker)
		return string([]rune(text)[:n]) + opts.TruncateMarker
	case Wrap:
		r = wrap(text, cont, limit)
	case WordWrap:
		r = wordWrap(text, cont, limit)
	}
	if strings.Contains(r, "\n") || strings.HasPrefix(r, cont) {
		r = "\n" + r
	}
	return r
}

// wrap splits text into chunks of limit characters. Each chunk is prefixed
// with cont.
func wrap(text, cont string, limit int) string {
	var b strings.Builder
	runes := []rune(text)
	for start := 0; start < len(runes); start += limit {
		if start > 0 {
			b.WriteByte('\n')
		}
		end := min(start+limit, len(runes))
		b.WriteString(cont)
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}

// wordWrap packs the space-separated words of text greedily into lines. The
// length of a line includes its prefix cont. Words longer than a line are not
// split.
func wordWrap(text, cont string, limit int) string {
	var out, line strings.Builder
	base := utf8.RuneCountInString(cont)
	line.WriteString(cont)
	n := base
	for _, word := range strings.Split(text, " ") {
		wl := utf8.RuneCountInString(word)
		if n+wl+1 > limit && n > base {
			out.WriteString(line.String())
			out.WriteByte('\n')
			line.Reset()
			line.WriteString(cont)
			n = base
		}
		if n > base {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	if n > base {
		out.WriteString(line.String())
	}
	return out.String()
}

// RenderError indicates that the content of a node could not be rendered.
type RenderError struct {
	Tag   string // name of the node
	Level int    // depth of the node
	Err   error
}

func (e *RenderError) Error() string {
	return "pretty: cannot render " + e.Tag + " at level " + strconv.Itoa(e.Level) + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
