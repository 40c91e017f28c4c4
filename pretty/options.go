package pretty

import (
	"strings"
	"unicode/utf8"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/content"
)

// Mode selects how content longer than [Options.MaxLineLength] is handled.
//
//go:generate stringer -type=Mode
type Mode uint8

const (
	// Truncate clips the content and appends [Options.TruncateMarker].
	Truncate Mode = iota
	// Wrap splits the content into lines of at most MaxLineLength characters.
	Wrap
	// WordWrap splits the content at spaces.
	WordWrap
)

// Placeholders of [Options.Format].
const (
	PlaceholderIndentation = "%IndentationString%"
	PlaceholderTagName     = "%TagName%"
	PlaceholderSeparator   = "%TagNameAndContentSeparator%"
	PlaceholderContent     = "%TagContent%"
)

// minWordWrapLength is the smallest MaxLineLength accepted in WordWrap mode.
const minWordWrapLength = 10

// Options configure a [Printer]. The zero value is not valid, use
// [DefaultOptions] as a starting point.
type Options struct {
	// Indentation is repeated once per nesting level in front of each line.
	Indentation string

	// IncludeTagNameForContentTags controls whether the tag name is printed
	// for nodes with non-empty content. Nodes without content always show
	// their name.
	IncludeTagNameForContentTags bool

	// Separator is printed between the tag name and non-empty content.
	Separator string

	// MaxLineLength is the maximum length of content in characters. Values
	// less than 1 disable the limit.
	MaxLineLength int
	Mode          Mode

	// TruncateMarker is appended to truncated content. It counts towards
	// MaxLineLength.
	TruncateMarker string

	// ConvertKeyUsage renders the BIT STRING following the keyUsage object
	// identifier as the names of the set key usage bits.
	ConvertKeyUsage bool

	// Format is the template of a single line. It must contain
	// PlaceholderContent. Other text is copied verbatim.
	Format string

	// Strategies render the content of leaf nodes. If nil, content.Default
	// is used.
	Strategies content.Table
}

// DefaultOptions returns a new Options value with the default settings.
func DefaultOptions() *Options {
	return &Options{
		Indentation:                  " | ",
		IncludeTagNameForContentTags: true,
		Separator:                    " ",
		MaxLineLength:                128,
		Mode:                         Wrap,
		TruncateMarker:               "...",
		ConvertKeyUsage:              true,
		Format:                       PlaceholderIndentation + PlaceholderTagName + PlaceholderSeparator + PlaceholderContent,
		Strategies:                   content.Default(),
	}
}

// Validate checks o for consistency. The returned error is an [*OptionError].
func (o *Options) Validate() error {
	if o.Mode > WordWrap {
		return &OptionError{Option: "Mode", Msg: "unknown mode " + o.Mode.String()}
	}
	if !strings.Contains(o.Format, PlaceholderContent) {
		return &OptionError{Option: "Format", Msg: "missing " + PlaceholderContent + " placeholder"}
	}
	if o.Mode == WordWrap && o.MaxLineLength < minWordWrapLength {
		return &OptionError{Option: "MaxLineLength", Msg: "must be at least 10 for WordWrap"}
	}
	if o.Mode == Truncate && o.MaxLineLength > 0 && utf8.RuneCountInString(o.TruncateMarker) >= o.MaxLineLength {
		return &OptionError{Option: "TruncateMarker", Msg: "must be shorter than MaxLineLength"}
	}
	return nil
}

// An OptionError describes an invalid option. It wraps
// [asn1tree.ErrInvalidArgument].
type OptionError struct {
	Option string
	Msg    string
}

func (e *OptionError) Error() string {
	return "pretty: invalid " + e.Option + ": " + e.Msg
}

func (e *OptionError) Unwrap() error {
	return asn1tree.ErrInvalidArgument
}
