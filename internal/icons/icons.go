// Package icons maps categories to the glyphs shown next to them.
package icons

import "github.com/ziadkadry99/azkar/internal/content"

// Default is shown when neither the icon key nor the category is known.
const Default = "📿"

// byKey is the closed set of icon keys a category may name explicitly.
var byKey = map[string]string{
	"sun":    "🌅",
	"moon":   "🌙",
	"bed":    "🛏️",
	"alarm":  "⏰",
	"mosque": "🕌",
	"book":   "📖",
	"hands":  "🤲",
	"heart":  "💚",
	"plane":  "✈️",
}

// ForCategory returns the glyph for a category id.
func ForCategory(id content.CategoryID) string {
	switch id {
	case content.CategoryMorning:
		return byKey["sun"]
	case content.CategoryEvening:
		return byKey["moon"]
	case content.CategorySleep:
		return byKey["bed"]
	case content.CategoryWakeup:
		return byKey["alarm"]
	case content.CategoryAfterPrayer:
		return byKey["mosque"]
	case content.CategoryQuranic:
		return byKey["book"]
	case content.CategoryProphetic:
		return byKey["hands"]
	case content.CategoryDistress:
		return byKey["heart"]
	case content.CategoryTravel:
		return byKey["plane"]
	default:
		return Default
	}
}

// For resolves the glyph for a category, preferring its explicit icon key.
func For(cat content.Category) string {
	if g, ok := byKey[cat.Icon]; ok {
		return g
	}
	return ForCategory(cat.ID)
}
