package sie

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every lexical or field coercion error.
var ErrSyntax = errors.New("sie: syntax error")

// SyntaxError reports malformed input at a line.
type SyntaxError struct {
	Line  int
	Label string
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("sie: line %d: #%s: %s", e.Line, e.Label, e.Msg)
	}
	return fmt.Sprintf("sie: line %d: %s", e.Line, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold for every SyntaxError.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func syntaxErrorf(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
