package stylesheet

import (
	"github.com/aymerick/douceur/css"
)

// Sheet is a compiled stylesheet.
type Sheet struct {
	source string
	sheet  *css.Stylesheet
}

// Source returns the text the sheet was compiled from.
func (s *Sheet) Source() string {
	return s.source
}

// Rules returns the top-level rules in source order.
func (s *Sheet) Rules() []*css.Rule {
	return s.sheet.Rules
}

// Len returns the number of top-level rules.
func (s *Sheet) Len() int {
	return len(s.sheet.Rules)
}

// Declarations collects the declarations of every qualified rule listing
// selector, including rules nested in at-rules such as @media.
func (s *Sheet) Declarations(selector string) []*css.Declaration {
	return collectDeclarations(s.sheet.Rules, selector, nil)
}

func collectDeclarations(rules []*css.Rule, selector string, out []*css.Declaration) []*css.Declaration {
	for _, rule := range rules {
		if rule.Kind == css.QualifiedRule {
			for _, sel := range rule.Selectors {
				if sel == selector {
					out = append(out, rule.Declarations...)
					break
				}
			}
		}
		if len(rule.Rules) > 0 {
			out = collectDeclarations(rule.Rules, selector, out)
		}
	}
	return out
}

// String serialises the rule tree.
func (s *Sheet) String() string {
	return s.sheet.String()
}
