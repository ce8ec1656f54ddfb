package sentence

import (
	"fmt"
	"strings"
)

// ParseForm builds a Form from a COLAG illoc tag and a space-separated
// symbol string, as found in the surface-form file (spec.md §6).
func ParseForm(illoc, symbols string) (Form, error) {
	ilc, err := ParseIlloc(illoc)
	if err != nil {
		return Form{}, err
	}
	toks := strings.Fields(symbols)
	words := make([]Symbol, 0, len(toks))
	for _, tok := range toks {
		sym, err := ParseSymbol(tok)
		if err != nil {
			return Form{}, fmt.Errorf("parse form: %w", err)
		}
		words = append(words, sym)
	}
	return Form{Illoc: ilc, Words: words}, nil
}
