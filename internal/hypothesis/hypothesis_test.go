package hypothesis

import "testing"

func TestNewWeightedInitialState(t *testing.T) {
	w := NewWeighted()
	for p, v := range w.Weights {
		if v != 0.5 {
			t.Errorf("weight[%d] = %v, want 0.5", p, v)
		}
	}
}

func TestTheoryRoundTrip(t *testing.T) {
	s := Simple{Grammar: 611}
	th := OfSimple(s)
	if !th.IsSimple() {
		t.Fatal("expected IsSimple() true")
	}
	got, ok := th.AsSimple()
	if !ok || got.Grammar != 611 {
		t.Errorf("AsSimple() = %v, %v, want {611}, true", got, ok)
	}
	if _, ok := th.AsWeighted(); ok {
		t.Error("AsWeighted() on a Simple theory should report ok=false")
	}

	w := NewWeighted()
	th2 := OfWeighted(w)
	if th2.IsSimple() {
		t.Error("expected IsSimple() false for a Weighted theory")
	}
}
