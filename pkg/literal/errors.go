package literal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("literal: syntax error")
	// ErrUnbound is matched by every *UnboundError.
	ErrUnbound = errors.New("literal: unbound expression")
)

// SyntaxError reports malformed placeholder syntax at a byte offset.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("literal: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// UnboundError lists expressions that could not be resolved.
type UnboundError struct {
	Expressions []string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("literal: no value for %s", strings.Join(e.Expressions, ", "))
}

func (e *UnboundError) Is(target error) bool { return target == ErrUnbound }
