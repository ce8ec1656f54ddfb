package sentence

import "fmt"

// Illoc is the illocutionary force tag of a surface form.
type Illoc int

const (
	Dec Illoc = iota
	Q
	Imp
)

// ParseIlloc maps a COLAG illoc column value to an Illoc.
func ParseIlloc(s string) (Illoc, error) {
	switch s {
	case "DEC":
		return Dec, nil
	case "Q":
		return Q, nil
	case "IMP":
		return Imp, nil
	default:
		return 0, fmt.Errorf("illegal illoc %q", s)
	}
}

// Form is an illocutionary force tag plus an ordered sequence of symbols.
type Form struct {
	Illoc Illoc
	Words []Symbol
}

// Contains reports whether sym appears anywhere in the form, under
// wildcard feature equality.
func (f Form) Contains(sym Symbol) bool {
	return f.Index(sym) != -1
}

// ContainsFeature reports whether any word in the form carries feature ft
// with value True.
func (f Form) ContainsFeature(ft FeatureType) bool {
	for _, w := range f.Words {
		if w.HasFeature(ft) {
			return true
		}
	}
	return false
}

// Topicalized reports whether the first word of the form equals sym.
// False on an empty form.
func (f Form) Topicalized(sym Symbol) bool {
	if len(f.Words) == 0 {
		return false
	}
	return f.Words[0].Equal(sym)
}

// EndsWith reports whether the last word of the form equals sym. False on
// an empty form.
func (f Form) EndsWith(sym Symbol) bool {
	if len(f.Words) == 0 {
		return false
	}
	return f.Words[len(f.Words)-1].Equal(sym)
}

// Index returns the position of the first word equal to sym, or -1 if
// none match.
func (f Form) Index(sym Symbol) int {
	for i, w := range f.Words {
		if w.Equal(sym) {
			return i
		}
	}
	return -1
}

// Order reports whether both a and b are present and a precedes b.
func (f Form) Order(a, b Symbol) bool {
	ia, ib := f.Index(a), f.Index(b)
	if ia == -1 || ib == -1 {
		return false
	}
	return ia < ib
}

// Adjacent reports whether both a and b are present and b immediately
// follows a.
func (f Form) Adjacent(a, b Symbol) bool {
	ia, ib := f.Index(a), f.Index(b)
	if ia == -1 || ib == -1 {
		return false
	}
	return ib == ia+1
}

// StartsWith reports whether the form's word sequence begins with exactly
// the given symbols, in order, under wildcard equality.
func (f Form) StartsWith(words []Symbol) bool {
	if len(words) > len(f.Words) {
		return false
	}
	for i, w := range words {
		if !f.Words[i].Equal(w) {
			return false
		}
	}
	return true
}

// OutOblique reports true iff O1, O2, O3 and P all appear in the form and
// neither of the two canonical oblique configurations holds:
// (O1 < O2 < P, P immediately before O3) or
// (O3 < O2 < O1, O3 immediately before P).
func (f Form) OutOblique() bool {
	o1, ok1 := f.index(O1)
	o2, ok2 := f.index(O2)
	o3, ok3 := f.index(O3)
	p, okP := f.index(P)
	if !ok1 || !ok2 || !ok3 || !okP {
		return false
	}
	if o1 < o2 && o2 < p && p == o3-1 {
		return false
	}
	if o3 < o2 && o2 < o1 && o3 == p-1 {
		return false
	}
	return true
}

func (f Form) index(sym Symbol) (int, bool) {
	i := f.Index(sym)
	return i, i != -1
}
