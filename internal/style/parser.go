package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Parse parses a stylesheet. Only qualified rules with simple ".class" or "#id" selectors are
// kept; at-rules and other selectors are skipped. A rule with several selectors
// (".a, #b { ... }") becomes one Rule per selector, in order.
func Parse(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind != css.QualifiedRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			props[strings.ToLower(d.Property)] = d.Value
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if !simpleSelector(sel) {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
	}
	return sheet, nil
}

func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " >+~:.#[")
}
