package stylesheet

import (
	"fmt"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
)

var closers = map[string]string{
	"}": "{",
	")": "(",
	"]": "[",
}

type opening struct {
	delim        string
	line, column int
}

// ReplaceSync compiles text immediately.
func ReplaceSync(text string) (*Sheet, error) {
	if err := checkTokens(text); err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error()}
	}
	return &Sheet{source: text, sheet: parsed}, nil
}

// checkTokens rejects scanner errors and unbalanced blocks.
func checkTokens(text string) error {
	var stack []opening
	s := scanner.New(text)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				return &SyntaxError{
					Line:   top.line,
					Column: top.column,
					Msg:    fmt.Sprintf("unclosed %q", top.delim),
				}
			}
			return nil
		case scanner.TokenError:
			return &SyntaxError{Line: tok.Line, Column: tok.Column, Msg: tok.Value}
		case scanner.TokenFunction:
			stack = append(stack, opening{delim: "(", line: tok.Line, column: tok.Column})
		case scanner.TokenChar:
			switch tok.Value {
			case "{", "(", "[":
				stack = append(stack, opening{delim: tok.Value, line: tok.Line, column: tok.Column})
			case "}", ")", "]":
				want := closers[tok.Value]
				if len(stack) == 0 || stack[len(stack)-1].delim != want {
					return &SyntaxError{
						Line:   tok.Line,
						Column: tok.Column,
						Msg:    fmt.Sprintf("unexpected %q", tok.Value),
					}
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
}
