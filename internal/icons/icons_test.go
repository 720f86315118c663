package icons

import (
	"testing"

	"github.com/ziadkadry99/azkar/internal/content"
)

func TestForCategory(t *testing.T) {
	tests := []struct {
		id   content.CategoryID
		want string
	}{
		{content.CategoryMorning, "🌅"},
		{content.CategoryEvening, "🌙"},
		{content.CategoryAfterPrayer, "🕌"},
		{content.CategoryQuranic, "📖"},
		{content.CategoryTravel, "✈️"},
		{"unknown", Default},
	}
	for _, tt := range tests {
		if got := ForCategory(tt.id); got != tt.want {
			t.Errorf("ForCategory(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestForPrefersIconKey(t *testing.T) {
	cat := content.Category{ID: content.CategoryMorning, Icon: "moon"}
	if got := For(cat); got != "🌙" {
		t.Errorf("For with icon key = %q, want 🌙", got)
	}

	cat.Icon = "not-a-key"
	if got := For(cat); got != "🌅" {
		t.Errorf("For with unknown key = %q, want category default 🌅", got)
	}
}

func TestEveryCategoryHasGlyph(t *testing.T) {
	store, err := content.LoadBundled()
	if err != nil {
		t.Fatalf("LoadBundled: %v", err)
	}
	for _, sec := range store.Sections() {
		for _, cat := range sec.Categories {
			if ForCategory(cat.ID) == Default {
				t.Errorf("category %s falls back to default glyph", cat.ID)
			}
		}
	}
}
