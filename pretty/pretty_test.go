package pretty

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/certinfo"
	"codello.dev/asn1tree/content"
	"codello.dev/asn1tree/internal/fixtures"
	"codello.dev/asn1tree/oid"
)

func utf8String(t *testing.T, s string) *asn1tree.Tag {
	t.Helper()
	tag, err := asn1tree.NewUTF8String(s)
	require.NoError(t, err)
	return tag
}

func mustOID(t *testing.T, s string) *asn1tree.Tag {
	t.Helper()
	b, err := oid.Encode(s)
	require.NoError(t, err)
	return asn1tree.NewObjectIdentifier(b)
}

func TestPrint(t *testing.T) {
	tree := asn1tree.NewSequence(
		asn1tree.NewInteger(5),
		asn1tree.NewSequence(utf8String(t, "hello"), asn1tree.NewBoolean(true)),
		asn1tree.NewNull(),
	)
	tests := map[string]struct {
		modify func(o *Options)
		want   string
	}{
		"Default": {
			func(o *Options) {},
			"Sequence\n | INTEGER 5\n | Sequence\n |  | UTF8String hello\n |  | Boolean True\n | NULL",
		},
		"NoTagNames": {
			func(o *Options) { o.IncludeTagNameForContentTags = false },
			"Sequence\n | 5\n | Sequence\n |  | hello\n |  | True\n | NULL",
		},
		"Indentation": {
			func(o *Options) { o.Indentation = "  " },
			"Sequence\n  INTEGER 5\n  Sequence\n    UTF8String hello\n    Boolean True\n  NULL",
		},
		"Format": {
			func(o *Options) {
				o.Format = "%IndentationString%<%TagName%>%TagNameAndContentSeparator%%TagContent%"
				o.Separator = ": "
			},
			"<Sequence>\n | <INTEGER>: 5\n | <Sequence>\n |  | <UTF8String>: hello\n |  | <Boolean>: True\n | <NULL>",
		},
		"ContentOnly": {
			func(o *Options) { o.Format = "%TagContent%" },
			"\n5\n\nhello\nTrue\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			got, err := Print(tree, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrint_Truncate(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 20
	opts.Mode = Truncate
	opts.IncludeTagNameForContentTags = false

	got, err := Print(utf8String(t, "This is a very long content that should be truncated."), opts)
	require.NoError(t, err)
	assert.Equal(t, "This is a very lo...", got)

	opts.TruncateMarker = "…"
	opts.MaxLineLength = 10
	got, err = Print(utf8String(t, strings.Repeat("č", 13)), opts)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("č", 9)+"…", got)
	assert.Equal(t, 10, utf8.RuneCountInString(got))
}

func TestPrint_Wrap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 22
	opts.Indentation = ""
	opts.IncludeTagNameForContentTags = false

	got, err := Print(utf8String(t, "This is a very long content that should be wrapped."), opts)
	require.NoError(t, err)
	assert.Equal(t, "\nThis is a very long co\nntent that should be w\nrapped.", got)
}

func TestPrint_WrapNested(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 10

	tree := asn1tree.NewSequence(utf8String(t, "abcdefghijklmnopqrstuvwxyz0123"), asn1tree.NewInteger(7))
	got, err := Print(tree, opts)
	require.NoError(t, err)
	assert.Equal(t, "Sequence\n | UTF8String \n |  | abcdefghij\n |  | klmnopqrst\n |  | uvwxyz0123\n | INTEGER 7", got)
}

func TestPrint_WordWrap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 20
	opts.Mode = WordWrap
	opts.Indentation = ""
	opts.IncludeTagNameForContentTags = false

	text := "This is a very long content that should be word wrapped."
	got, err := Print(utf8String(t, text), opts)
	require.NoError(t, err)
	assert.Equal(t, "\nThis is a very long\ncontent that should\nbe word wrapped.", got)

	lines := strings.Split(strings.TrimPrefix(got, "\n"), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), opts.MaxLineLength)
	}
	assert.Equal(t, text, strings.Join(lines, " "))
}

func TestPrint_WordWrapLongWord(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 10
	opts.Mode = WordWrap
	opts.Indentation = "."
	opts.IncludeTagNameForContentTags = false

	got, err := Print(asn1tree.NewSequence(utf8String(t, "a abcdefghijklmnop b")), opts)
	require.NoError(t, err)
	assert.Equal(t, "Sequence\n.\n..a\n..abcdefghijklmnop\n..b", got)
}

func TestPrint_Unlimited(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 0
	opts.Mode = WordWrap
	// WordWrap requires a limit, even if it is disabled.
	_, err := Print(asn1tree.NewNull(), opts)
	require.ErrorIs(t, err, asn1tree.ErrInvalidArgument)

	opts.Mode = Wrap
	text := strings.Repeat("x", 500)
	got, err := Print(utf8String(t, text), opts)
	require.NoError(t, err)
	assert.Equal(t, "UTF8String "+text, got)
}

func TestPrint_KeyUsage(t *testing.T) {
	value := asn1tree.NewOctetString(nil)
	value.Children = []*asn1tree.Tag{asn1tree.New(asn1tree.TagBitString, []byte{0x05, 0xA0})}
	ext := asn1tree.NewSequence(mustOID(t, certinfo.OIDKeyUsage), asn1tree.NewBoolean(true), value)

	opts := DefaultOptions()
	opts.Strategies = content.NewTable(nil)
	got, err := Print(ext, opts)
	require.NoError(t, err)
	assert.Equal(t, "Sequence\n | OBJECT_IDENTIFIER 2.5.29.15\n | Boolean True\n | OctetString\n |  | BitString DigitalSignature KeyEncipherment", got)

	opts.ConvertKeyUsage = false
	got, err = Print(ext, opts)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, " |  | BitString 101"), got)
}

func TestPrint_KeyUsageOtherOID(t *testing.T) {
	tree := asn1tree.NewSequence(
		mustOID(t, certinfo.OIDKeyUsage),
		mustOID(t, "2.5.29.19"),
		asn1tree.New(asn1tree.TagBitString, []byte{0x05, 0xA0}),
	)
	got, err := Print(tree, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, " | BitString 101"), got)
}

func TestPrint_Fixtures(t *testing.T) {
	tests := map[string][]string{
		fixtures.Request: {
			"UTF8String Test Request",
			"OBJECT_IDENTIFIER 1.2.840.113549.1.9.14, extensionRequest",
			"BitString DigitalSignature NonRepudiation",
		},
		fixtures.Qualified: {
			" |  | [0]\n |  |  | INTEGER 2",
			"UTF8String Testovaci TwinsOpra",
			"UTCTime 2024-07-03 19:03:27 UTC",
			"[1] kral@ica.cz",
		},
		fixtures.PublicCA: {
			"UTF8String Služba pečetění na dálku",
			"OctetString CA270AEED4E9E8B3D54ECA01AEAAD8A45FC7DD45",
			"BitString DigitalSignature KeyEncipherment",
		},
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			tree, err := ber.Decode(fixtures.DER(name))
			require.NoError(t, err)
			got, err := Print(tree, nil)
			require.NoError(t, err)
			for _, s := range want {
				assert.Contains(t, got, s)
			}
		})
	}
}

func TestPrint_KeyIdentifiers(t *testing.T) {
	tree, err := ber.Decode(fixtures.DER(fixtures.PublicCA))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.IncludeTagNameForContentTags = false

	skid, ok := certinfo.FindExtension(tree, certinfo.OIDSubjectKeyIdentifier)
	require.True(t, ok)
	got, err := Print(skid.Value, opts)
	require.NoError(t, err)
	assert.Equal(t, "CA270AEED4E9E8B3D54ECA01AEAAD8A45FC7DD45", got)

	akid, ok := certinfo.FindExtension(tree, certinfo.OIDAuthorityKeyIdentifier)
	require.True(t, ok)
	got, err = Print(akid.Value.Child(0), opts)
	require.NoError(t, err)
	assert.Equal(t, "65A11CFA92E10AF64C85EBF233DA6162410419EB", got)
}

func TestPrint_RenderError(t *testing.T) {
	tree := asn1tree.NewSequence(asn1tree.NewInteger(1), asn1tree.New(asn1tree.TagBitString, []byte{0x09, 0x00}))

	got, err := Print(tree, nil)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, asn1tree.ErrInvalidEncoding)
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "BitString", re.Tag)
	assert.Equal(t, 1, re.Level)

	var buf bytes.Buffer
	err = Fprint(&buf, tree, nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestPrint_Nil(t *testing.T) {
	_, err := Print(nil, nil)
	assert.ErrorIs(t, err, asn1tree.ErrInvalidArgument)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, asn1tree.NewInteger(300), nil))
	assert.Equal(t, "INTEGER 300", buf.String())
}

func TestPrinter_Reuse(t *testing.T) {
	p, err := NewPrinter(nil)
	require.NoError(t, err)
	for range 3 {
		got, err := p.Print(asn1tree.NewSequence(asn1tree.NewNull()))
		require.NoError(t, err)
		assert.Equal(t, "Sequence\n | NULL", got)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := map[string]struct {
		modify func(o *Options)
		option string
	}{
		"MissingContent":   {func(o *Options) { o.Format = "%TagName%" }, "Format"},
		"WordWrapTooShort": {func(o *Options) { o.Mode = WordWrap; o.MaxLineLength = 9 }, "MaxLineLength"},
		"MarkerTooLong":    {func(o *Options) { o.Mode = Truncate; o.MaxLineLength = 3 }, "TruncateMarker"},
		"UnknownMode":      {func(o *Options) { o.Mode = 7 }, "Mode"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			err := opts.Validate()
			var oe *OptionError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, tt.option, oe.Option)
			assert.ErrorIs(t, err, asn1tree.ErrInvalidArgument)

			_, err = NewPrinter(opts)
			assert.Error(t, err)
		})
	}

	assert.NoError(t, DefaultOptions().Validate())
	opts := DefaultOptions()
	opts.Mode = WordWrap
	opts.MaxLineLength = 10
	assert.NoError(t, opts.Validate())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "WordWrap", WordWrap.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestParseFormat(t *testing.T) {
	got := parseFormat("a%TagName%%TagContent%b%Unknown%")
	assert.Equal(t, []segment{
		{text: "a"},
		{kind: tagName},
		{kind: tagContent},
		{text: "b%Unknown%"},
	}, got)
}
