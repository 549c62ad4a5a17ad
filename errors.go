package interpolate

import (
	"errors"
	"fmt"
)

// ErrArity is matched by every *ArityError.
var ErrArity = errors.New("interpolate: fragment count must be substitution count + 1")

// ArityError reports a template whose fragment and substitution counts do not
// line up.
type ArityError struct {
	Fragments     int
	Substitutions int
}

func newArityError(fragments, substitutions int) *ArityError {
	return &ArityError{Fragments: fragments, Substitutions: substitutions}
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("interpolate: %d fragment(s) for %d substitution(s), want %d",
		e.Fragments, e.Substitutions, e.Substitutions+1)
}

// Is makes errors.Is(err, ErrArity) hold for any *ArityError.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// Validate reports whether fragments and substitutions form a well formed
// template. It returns nil or an *ArityError.
func Validate(fragments []string, substitutions []any) error {
	if len(fragments) != len(substitutions)+1 {
		return newArityError(len(fragments), len(substitutions))
	}
	return nil
}
