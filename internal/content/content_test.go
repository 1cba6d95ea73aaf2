package content

import "testing"

func TestPickKnownKindsAndLevels(t *testing.T) {
	for _, kind := range []string{"comprehension", "gap_filling", "sentence_formation", "paragraph_writing"} {
		for _, level := range []string{"A1", "A2", "B1", "B2"} {
			it := Pick(kind, level, nil)
			if it == nil {
				t.Errorf("Pick(%s, %s) = nil", kind, level)
				continue
			}
			if it.ID == "" {
				t.Errorf("Pick(%s, %s) item has no ID", kind, level)
			}
		}
	}
}

func TestPickFallsBackToB1(t *testing.T) {
	// C1 has no banks of its own.
	it := Pick("gap_filling", "C1", nil)
	if it == nil {
		t.Fatal("no fallback item")
	}
	if HasBank("gap_filling", "C1") {
		t.Fatal("test premise broken: C1 bank exists")
	}

	prefix := "gap_filling/B1/"
	if it.ID[:len(prefix)] != prefix {
		t.Errorf("fallback item id = %q, want B1 bank", it.ID)
	}
}

func TestPickUnknownKind(t *testing.T) {
	if it := Pick("interpretive_dance", "A1", nil); it != nil {
		t.Errorf("unknown kind returned %+v", it)
	}
}

func TestPickExclusion(t *testing.T) {
	first := Pick("comprehension", "A1", nil)

	// With the first item excluded, twenty draws must all avoid it.
	for i := 0; i < 20; i++ {
		it := Pick("comprehension", "A1", []string{first.ID})
		if it.ID == first.ID {
			t.Fatalf("excluded item %s was served", first.ID)
		}
	}

	// When everything is excluded the exclusion is ignored.
	all := []string{}
	for i := 0; i < 10; i++ {
		it := Pick("comprehension", "A1", all)
		all = append(all, it.ID)
	}
	if it := Pick("comprehension", "A1", all); it == nil {
		t.Fatal("full exclusion returned nil")
	}
}

func TestSampleWords(t *testing.T) {
	words := SampleWords("A1", 5)
	if len(words) != 5 {
		t.Fatalf("got %d words, want 5", len(words))
	}
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			t.Errorf("duplicate word %q in sample", w)
		}
		seen[w] = true
	}

	// Requesting more than the bank holds caps at the bank size.
	many := SampleWords("B2", 1000)
	if len(many) == 0 || len(many) > 1000 {
		t.Errorf("oversized request returned %d words", len(many))
	}
}
