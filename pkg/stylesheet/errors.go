package stylesheet

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("stylesheet: syntax error")

// SyntaxError reports stylesheet text that failed to compile. Line and Column
// are zero when the position is unknown.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return "stylesheet: " + e.Msg
	}
	return fmt.Sprintf("stylesheet: %s at %d:%d", e.Msg, e.Line, e.Column)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
