package interpolate

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VanillaMaster/interpolate/pkg/stringify"
)

func templateOf(n int) ([]string, []any) {
	fragments := make([]string, n+1)
	substitutions := make([]any, n)
	for i := range fragments {
		fragments[i] = "<" + strconv.Itoa(i) + ">"
	}
	for i := range substitutions {
		switch i % 4 {
		case 0:
			substitutions[i] = i
		case 1:
			substitutions[i] = "s" + strconv.Itoa(i)
		case 2:
			substitutions[i] = i%3 == 0
		default:
			substitutions[i] = []int{i, i}
		}
	}
	return fragments, substitutions
}

// reference builds the expected output the slow, obvious way.
func reference(fragments []string, substitutions []any) string {
	out := ""
	for i, sub := range substitutions {
		out += fragments[i] + stringify.Text(sub)
	}
	return out + fragments[len(fragments)-1]
}

func TestInterpolateAlternatesFragmentsAndSubstitutions(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10} {
		t.Run(fmt.Sprintf("substitutions=%d", n), func(t *testing.T) {
			fragments, substitutions := templateOf(n)
			want := reference(fragments, substitutions)

			if diff := cmp.Diff(want, Interpolate(fragments, substitutions)); diff != "" {
				t.Fatalf("Interpolate mismatch (-want +got):\n%s", diff)
			}
			if n > 0 {
				if diff := cmp.Diff(want, merge(fragments, substitutions)); diff != "" {
					t.Fatalf("general path differs from fast path (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestInterpolateConversions(t *testing.T) {
	cases := []struct {
		name string
		sub  any
		want string
	}{
		{name: "number", sub: 42, want: "a42b"},
		{name: "bool", sub: true, want: "atrueb"},
		{name: "nil", sub: nil, want: "anullb"},
		{name: "undefined", sub: stringify.Undefined, want: "aundefinedb"},
		{name: "array", sub: []int{1, 2}, want: "a1,2b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interpolate([]string{"a", "b"}, []any{tc.sub}); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInterpolateZeroSubstitutions(t *testing.T) {
	if got := Interpolate([]string{"just text"}, nil); got != "just text" {
		t.Fatalf("got %q", got)
	}
	if got := Tag([]string{"just text"}); got != "just text" {
		t.Fatalf("Tag got %q", got)
	}
}

func TestInterpolateIsPure(t *testing.T) {
	fragments, substitutions := templateOf(6)
	fragmentsBefore := append([]string(nil), fragments...)
	substitutionsBefore := append([]any(nil), substitutions...)

	first := Interpolate(fragments, substitutions)
	second := Interpolate(fragments, substitutions)
	if first != second {
		t.Fatalf("repeated calls differ: %q vs %q", first, second)
	}
	if diff := cmp.Diff(fragmentsBefore, fragments); diff != "" {
		t.Fatalf("fragments mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(substitutionsBefore, substitutions); diff != "" {
		t.Fatalf("substitutions mutated (-before +after):\n%s", diff)
	}
}

func TestTagLorem(t *testing.T) {
	if got := Tag([]string{"Lorem ", " dolor"}, "ipsum"); got != "Lorem ipsum dolor" {
		t.Fatalf("got %q", got)
	}
}

func TestInterpolatePanicsOnArityMismatch(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrArity) {
			t.Fatalf("expected ErrArity panic, got %v", r)
		}
		var arity *ArityError
		if !errors.As(err, &arity) || arity.Fragments != 1 || arity.Substitutions != 2 {
			t.Fatalf("unexpected arity details: %+v", arity)
		}
	}()
	Interpolate([]string{"only"}, []any{1, 2})
}

func TestValidate(t *testing.T) {
	if err := Validate([]string{"a", "b"}, []any{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Validate([]string{"a", "b", "c"}, []any{1})
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
	if !strings.Contains(err.Error(), "3 fragment(s) for 1 substitution(s)") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWriteMatchesInterpolate(t *testing.T) {
	for _, n := range []int{0, 2, 7} {
		fragments, substitutions := templateOf(n)
		var buf bytes.Buffer
		written, err := Write(&buf, fragments, substitutions)
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		want := Interpolate(fragments, substitutions)
		if buf.String() != want || written != len(want) {
			t.Fatalf("Write produced %q (%d bytes), want %q", buf.String(), written, want)
		}
	}
}

type failingWriter struct{ budget int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errors.New("disk full")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestWriteStopsOnFirstError(t *testing.T) {
	n, err := Write(&failingWriter{budget: 4}, []string{"ab", "cd", "ef"}, []any{1, 2})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected write error, got %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes reported, got %d", n)
	}
}

func TestWriteRejectsMalformedInput(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Write(&buf, nil, nil); !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func BenchmarkInterpolate(b *testing.B) {
	for _, n := range []int{1, 3, 4, 16} {
		fragments, substitutions := templateOf(n)
		b.Run(fmt.Sprintf("substitutions=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Interpolate(fragments, substitutions)
			}
		})
	}
}
