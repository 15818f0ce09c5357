package sfx

import "testing"

func TestAllNamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range All {
		if name == "" {
			t.Errorf("All contains an empty name")
		}
		if seen[name] {
			t.Errorf("All contains %q twice", name)
		}
		seen[name] = true
	}
	if len(All) != 3 {
		t.Errorf("len(All) = %d, expected 3", len(All))
	}
}

func TestSilent(t *testing.T) {
	var s Silent
	for _, name := range All {
		s.PlaySound(name)
	}
	s.PlaySound("unknown")
}
