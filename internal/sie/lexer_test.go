package sie

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// content prepends a #FLAGGA line and joins lines with "\n".
func content(lines ...string) string {
	return "#FLAGGA 1\n" + strings.Join(lines, "\n") + "\n"
}

// lexLast returns the last directive lexed from src.
func lexLast(t *testing.T, src string) Directive {
	t.Helper()
	ds, err := Lex([]byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, ds)
	return ds[len(ds)-1]
}

func TestLexLabelRequired(t *testing.T) {
	_, err := Lex([]byte(content("this is not a label")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 2, serr.Line)
}

func TestLexMissingLabel(t *testing.T) {
	_, err := Lex([]byte("# foo\n"))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLexLineEndings(t *testing.T) {
	d := lexLast(t, content("#FOO bar\r\n"))
	assert.Equal(t, "FOO", d.Label)
	assert.Equal(t, []string{"bar"}, d.Values())

	ds, err := Lex([]byte("#A 1\r\n#B 2\r\n#C 3"))
	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.Equal(t, []string{"3"}, ds[2].Values())
}

func TestLexEmptyLines(t *testing.T) {
	ds, err := Lex([]byte(content(" ", "\t", " \t ", "#FOO bar", " ", "\t", " \t ", "")))
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "FOO", ds[1].Label)
	assert.Equal(t, 5, ds[1].Line)
}

func TestLexFieldDelimiters(t *testing.T) {
	d := lexLast(t, content("#FOO foo\t \tbar\tbaz"))
	assert.Equal(t, []string{"foo", "bar", "baz"}, d.Values())
}

func TestLexSurroundingSpace(t *testing.T) {
	assert.Equal(t, []string{"bar"}, lexLast(t, content(" \t #FOO bar")).Values())
	assert.Equal(t, []string{"bar"}, lexLast(t, content("#FOO bar\t \t")).Values())
}

func TestLexQuotedFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"quoted", `#FOO "bar"`, []string{"bar"}},
		{"space inside quotes", `#FOO "bar baz"`, []string{"bar baz"}},
		{"escaped quote", `#FOO "bar \" baz"`, []string{`bar " baz`}},
		{"empty string", `#FOO "" bar`, []string{"", "bar"}},
		{"backslash kept", `#FOO "a\b"`, []string{`a\b`}},
		{"adjacent fields", `#FOO "a"b`, []string{"a", "b"}},
		{"swedish characters", "#FOO \"åäö ÅÄÖ\"", []string{"åäö ÅÄÖ"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := lexLast(t, content(tt.line))
			assert.Equal(t, tt.want, d.Values())
			assert.True(t, d.Fields[0].Quoted)
		})
	}
}

func TestLexUnterminatedQuote(t *testing.T) {
	_, err := Lex([]byte(content(`#FOO "bar`)))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLexQuoteInsideBareField(t *testing.T) {
	_, err := Lex([]byte(content(`#FOO ba"r`)))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLexInvalidCharacters(t *testing.T) {
	var invalid []byte
	for c := 0; c <= 31; c++ {
		invalid = append(invalid, byte(c))
	}
	invalid = append(invalid, 127)

	for _, c := range invalid {
		quoted := content("#FOO \"bar" + string([]byte{c}) + "baz\"")
		_, err := Lex([]byte(quoted))
		assert.ErrorIs(t, err, ErrSyntax, "quoted 0x%02x", c)

		// A trailing tab or a line break is whitespace outside quotes.
		if c == '\t' || c == '\n' {
			continue
		}
		bare := content("#FOO bar" + string([]byte{c}) + "baz")
		_, err = Lex([]byte(bare))
		assert.ErrorIs(t, err, ErrSyntax, "bare 0x%02x", c)
	}
}

func TestLexValidCharacters(t *testing.T) {
	for c := 33; c <= 126; c++ {
		if c == '"' {
			continue
		}
		d := lexLast(t, content("#FOO "+string([]byte{byte(c)})))
		assert.Equal(t, []string{string([]byte{byte(c)})}, d.Values(), "0x%02x", c)
	}

	d := lexLast(t, content("#FOO "+string([]byte{0x86, 0x84, 0x94, 0xff})))
	assert.Equal(t, string([]byte{0x86, 0x84, 0x94, 0xff}), d.Fields[0].Raw)
}

func TestLexBlockDelimiters(t *testing.T) {
	ds, err := Lex([]byte("#VER A 1 20160101\n{\n   #TRANS 1920 {} 100\n}\n"))
	require.NoError(t, err)
	require.Len(t, ds, 4)
	assert.Equal(t, BlockStart, ds[1].Label)
	assert.Equal(t, "TRANS", ds[2].Label)
	assert.Equal(t, []string{"1920", "{}", "100"}, ds[2].Values())
	assert.Equal(t, BlockEnd, ds[3].Label)
}

func TestLexerNextIsLazy(t *testing.T) {
	l := NewLexer([]byte("#A 1\nbroken\n#C 3\n"))

	d, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", d.Label)

	_, err = l.Next()
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, 2, l.Line())
}

func TestLexerEOF(t *testing.T) {
	l := NewLexer([]byte("  \n\t\n"))
	_, err := l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLexReturnsNothingOnError(t *testing.T) {
	ds, err := Lex([]byte("#A 1\n#B \"x\x01\"\n"))
	require.Error(t, err)
	assert.Nil(t, ds)
}

func TestDirectivesStopsEarly(t *testing.T) {
	var labels []string
	for d, err := range Directives([]byte("#A\n#B\n#C\n")) {
		require.NoError(t, err)
		labels = append(labels, d.Label)
		if d.Label == "B" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, labels)
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Lex([]byte("#FOO \"x"))
	require.Error(t, err)
	assert.Equal(t, "sie: line 1: #FOO: unterminated quoted field", err.Error())
}
