package search

import (
	"context"
	"testing"

	"github.com/ziadkadry99/azkar/internal/content"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"سُبْحَانَ اللَّهِ", "سبحان الله"},
		{"أَسْتَغْفِرُ اللَّهَ", "استغفر الله"},
		{"إِنَّكَ", "انك"},
		{"آمَنَّا", "امنا"},
		{"عَلَى", "علي"},
		{"رَحْمَةً", "رحمه"},
		{"اللـــه", "الله"},
		{"  Hello   World ", "hello world"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func buildBundled(t *testing.T) *Index {
	t.Helper()
	store, err := content.LoadBundled()
	if err != nil {
		t.Fatalf("LoadBundled: %v", err)
	}
	ix, err := Build(context.Background(), store)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestSearchIgnoresDiacritics(t *testing.T) {
	ix := buildBundled(t)

	hits, err := ix.Search(context.Background(), "سبحان الله وبحمده", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected a hit for undiacritised query")
	}
	if hits[0].ID != "m4" {
		t.Errorf("first hit = %q, want m4", hits[0].ID)
	}
	if hits[0].Repeat != 100 {
		t.Errorf("repeat = %d, want 100", hits[0].Repeat)
	}
	if hits[0].Path != "/azkar/azkar_morning" {
		t.Errorf("path = %q, want /azkar/azkar_morning", hits[0].Path)
	}
}

func TestSearchAllTermsMustMatch(t *testing.T) {
	ix := buildBundled(t)
	ctx := context.Background()

	hits, err := ix.Search(ctx, "ربنا النار", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "q1" {
		t.Errorf("hits = %+v, want only q1", hits)
	}
}

func TestSearchOrderAndLimit(t *testing.T) {
	ix := buildBundled(t)
	ctx := context.Background()

	all, err := ix.Search(ctx, "الله", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected several hits, got %d", len(all))
	}
	if all[0].Section != content.SectionAzkar {
		t.Errorf("first hit section = %q, want azkar first", all[0].Section)
	}

	limited, err := ix.Search(ctx, "الله", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited hits = %d, want 2", len(limited))
	}
	if limited[0].ID != all[0].ID {
		t.Errorf("limit changed ordering: %q vs %q", limited[0].ID, all[0].ID)
	}
}

func TestSearchEmptyAndWildcards(t *testing.T) {
	ix := buildBundled(t)
	ctx := context.Background()

	hits, err := ix.Search(ctx, "   ", 0)
	if err != nil || hits != nil {
		t.Errorf("empty query = (%v, %v), want (nil, nil)", hits, err)
	}

	hits, err = ix.Search(ctx, "%", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("literal %% matched %d items, want 0", len(hits))
	}
}
