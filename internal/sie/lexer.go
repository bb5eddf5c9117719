// Package sie parses SIE4 accounting interchange files.
//
// A document is a sequence of lines, each holding one directive: a #LABEL
// followed by fields separated by tabs or spaces. Fields may be quoted, in
// which case they may contain spaces and \" escapes. The Lexer turns text
// into Directive records; the Parser coerces fields of known labels and
// applies them to the account and dimension builders.
package sie

import (
	"bytes"
	"io"
	"iter"
)

// Field is one raw field of a directive.
type Field struct {
	Raw    string
	Quoted bool
}

// Directive is a single parsed line.
type Directive struct {
	Label  string
	Fields []Field
	Line   int
}

// Values returns the raw text of every field.
func (d Directive) Values() []string {
	out := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		out[i] = f.Raw
	}
	return out
}

// Block delimiter labels. A line holding only "{" or "}" opens or closes the
// transaction list of a #VER directive.
const (
	BlockStart = "{"
	BlockEnd   = "}"
)

// Lexer reads directives one line at a time.
type Lexer struct {
	src  []byte
	pos  int
	line int
}

// NewLexer creates a Lexer over src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next directive, or io.EOF when the input is exhausted.
// Blank lines are skipped.
func (l *Lexer) Next() (Directive, error) {
	for l.pos < len(l.src) {
		raw := l.readLine()
		text := bytes.Trim(raw, " \t")
		if len(text) == 0 {
			continue
		}
		return l.lexLine(text)
	}
	return Directive{}, io.EOF
}

// Line returns the number of the line last read, starting at 1.
func (l *Lexer) Line() int { return l.line }

// readLine consumes one line, dropping its "\n" or "\r\n" terminator.
func (l *Lexer) readLine() []byte {
	l.line++
	rest := l.src[l.pos:]
	end := bytes.IndexByte(rest, '\n')
	if end < 0 {
		l.pos = len(l.src)
	} else {
		l.pos += end + 1
		rest = rest[:end]
	}
	return bytes.TrimSuffix(rest, []byte{'\r'})
}

func (l *Lexer) lexLine(text []byte) (Directive, error) {
	if len(text) == 1 && (text[0] == '{' || text[0] == '}') {
		return Directive{Label: string(text), Line: l.line}, nil
	}
	if text[0] != '#' {
		return Directive{}, syntaxErrorf(l.line, "expected #LABEL, found %q", truncate(text))
	}

	i := 1
	for i < len(text) && !isDelimiter(text[i]) {
		if !isFieldChar(text[i]) {
			return Directive{}, syntaxErrorf(l.line, "invalid character 0x%02x in label", text[i])
		}
		i++
	}
	if i == 1 {
		return Directive{}, syntaxErrorf(l.line, "missing label after #")
	}

	d := Directive{Label: string(text[1:i]), Line: l.line}
	for {
		for i < len(text) && isDelimiter(text[i]) {
			i++
		}
		if i >= len(text) {
			return d, nil
		}

		var (
			f   Field
			err *SyntaxError
		)
		if text[i] == '"' {
			f, i, err = l.lexQuoted(text, i+1)
		} else {
			f, i, err = l.lexBare(text, i)
		}
		if err != nil {
			err.Label = d.Label
			return Directive{}, err
		}
		d.Fields = append(d.Fields, f)
	}
}

// lexQuoted reads a quoted field starting after the opening quote.
func (l *Lexer) lexQuoted(text []byte, i int) (Field, int, *SyntaxError) {
	var buf []byte
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"':
			return Field{Raw: string(buf), Quoted: true}, i + 1, nil
		case c == '\\' && i+1 < len(text) && text[i+1] == '"':
			buf = append(buf, '"')
			i += 2
			continue
		case !isFieldChar(c):
			return Field{}, i, syntaxErrorf(l.line, "invalid character 0x%02x in field", c)
		}
		buf = append(buf, c)
		i++
	}
	return Field{}, i, syntaxErrorf(l.line, "unterminated quoted field")
}

// lexBare reads an unquoted field up to the next delimiter.
func (l *Lexer) lexBare(text []byte, i int) (Field, int, *SyntaxError) {
	start := i
	for i < len(text) && !isDelimiter(text[i]) {
		c := text[i]
		if c == '"' {
			return Field{}, i, syntaxErrorf(l.line, "unexpected quote in unquoted field")
		}
		if !isFieldChar(c) {
			return Field{}, i, syntaxErrorf(l.line, "invalid character 0x%02x in field", c)
		}
		i++
	}
	return Field{Raw: string(text[start:i])}, i, nil
}

// Directives lexes src lazily. Iteration stops after the first error.
func Directives(src []byte) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		l := NewLexer(src)
		for {
			d, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(d, err) || err != nil {
				return
			}
		}
	}
}

// Lex lexes the whole of src. On error no directives are returned.
func Lex(src []byte) ([]Directive, error) {
	var out []Directive
	for d, err := range Directives(src) {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func isDelimiter(c byte) bool {
	return c == ' ' || c == '\t'
}

// isFieldChar reports whether c may appear in a field: 32-126 and 128-255.
func isFieldChar(c byte) bool {
	return c >= 32 && c != 127
}

func truncate(b []byte) string {
	const limit = 20
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
