package runid

import "testing"

func TestNewProducesDistinctTags(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tag := New()
		if seen[tag] {
			t.Fatalf("run_tag %q repeated after %d draws", tag, i)
		}
		seen[tag] = true
	}
}
