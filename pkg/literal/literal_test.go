package literal_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VanillaMaster/interpolate/pkg/literal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		fragments []string
		exprs     []string
	}{
		{name: "plain", src: "just text", fragments: []string{"just text"}},
		{name: "empty", src: "", fragments: []string{""}},
		{
			name:      "middle",
			src:       "Lorem ${word} dolor",
			fragments: []string{"Lorem ", " dolor"},
			exprs:     []string{"word"},
		},
		{
			name:      "edges",
			src:       "${a}${ b }",
			fragments: []string{"", "", ""},
			exprs:     []string{"a", "b"},
		},
		{
			name:      "escaped",
			src:       `cost: \${price} is ${price}`,
			fragments: []string{"cost: ${price} is ", ""},
			exprs:     []string{"price"},
		},
		{
			name:      "escaped backslash",
			src:       `C:\\${dir}\file`,
			fragments: []string{`C:\`, `\file`},
			exprs:     []string{"dir"},
		},
		{
			name:      "escaped backslash then escaped open",
			src:       `\\\${x}`,
			fragments: []string{`\${x}`},
		},
		{
			name:      "dollar without brace",
			src:       "$5 for ${item}",
			fragments: []string{"$5 for ", ""},
			exprs:     []string{"item"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lit, err := literal.Parse(tc.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tc.fragments, lit.Fragments()); diff != "" {
				t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.exprs, lit.Expressions()); diff != "" {
				t.Fatalf("expressions mismatch (-want +got):\n%s", diff)
			}
			if lit.Source() != tc.src {
				t.Fatalf("source not preserved: %q", lit.Source())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]int{
		"broken ${name": 7,
		"empty ${  }":   6,
		`\${ok} ${`:     7,
	}
	for src, offset := range cases {
		_, err := literal.Parse(src)
		if !errors.Is(err, literal.ErrSyntax) {
			t.Fatalf("Parse(%q): expected ErrSyntax, got %v", src, err)
		}
		var syntax *literal.SyntaxError
		if !errors.As(err, &syntax) || syntax.Offset != offset {
			t.Fatalf("Parse(%q): expected offset %d, got %v", src, offset, err)
		}
	}
}

type author struct {
	Name  string
	Posts []string
}

func TestExecute(t *testing.T) {
	lit := literal.MustParse("${greeting}, ${user.Name}! Latest: ${user.Posts.-1} (${0} of ${1})")
	named := map[string]any{
		"greeting": "Hi",
		"user":     &author{Name: "Ada", Posts: []string{"first", "second"}},
	}

	got, err := lit.Execute(named, []any{1, 2})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := "Hi, Ada! Latest: second (1 of 2)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindReportsAllMissing(t *testing.T) {
	lit := literal.MustParse("${a} ${b} ${c} ${3}")
	_, err := lit.Bind(map[string]any{"b": true}, []any{"x"})
	if !errors.Is(err, literal.ErrUnbound) {
		t.Fatalf("expected ErrUnbound, got %v", err)
	}
	var unbound *literal.UnboundError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected *UnboundError, got %T", err)
	}
	if diff := cmp.Diff([]string{"a", "c", "3"}, unbound.Expressions); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNestedMaps(t *testing.T) {
	named := map[string]any{
		"cfg": map[string]any{
			"colors": map[string]string{"primary": "#333"},
		},
	}
	got, ok := literal.Resolve("cfg.colors.primary", named, nil)
	if !ok || got != "#333" {
		t.Fatalf("got %v (%v)", got, ok)
	}
	if _, ok := literal.Resolve("cfg.colors.missing", named, nil); ok {
		t.Fatalf("expected missing path to be unresolved")
	}
	if got, ok := literal.Resolve("cfg.colors", map[string]any{"cfg.colors": 1}, nil); !ok || got != 1 {
		t.Fatalf("expected whole-key lookup to win, got %v", got)
	}
}
