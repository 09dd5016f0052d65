package games

import (
	"testing"

	"svw.info/sudokuweb/internal/domain"
)

func TestStorePutGetDelete(t *testing.T) {
	st := NewStore()
	p := &domain.Puzzle{Difficulty: domain.Easy}

	id := st.Put(p)
	if id == "" {
		t.Fatal("Put returned an empty id")
	}
	if p.ID != id {
		t.Fatalf("puzzle ID not set: %q vs %q", p.ID, id)
	}

	got, ok := st.Get(id)
	if !ok || got != p {
		t.Fatalf("Get(%q) = %v, %v", id, got, ok)
	}

	if _, ok := st.Get("missing"); ok {
		t.Fatal("unknown id must not resolve")
	}

	st.Delete(id)
	if _, ok := st.Get(id); ok {
		t.Fatal("deleted game still resolvable")
	}
}

func TestStoreIDsAreUnique(t *testing.T) {
	st := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := st.Put(&domain.Puzzle{})
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
