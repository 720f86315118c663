package content

// SectionID identifies one of the two top-level groupings.
type SectionID string

const (
	SectionAzkar  SectionID = "azkar"
	SectionAdiyah SectionID = "adiyah"
)

// CategoryID identifies a category. The set is closed per section.
type CategoryID string

const (
	CategoryMorning     CategoryID = "azkar_morning"
	CategoryEvening     CategoryID = "azkar_evening"
	CategorySleep       CategoryID = "azkar_sleep"
	CategoryWakeup      CategoryID = "azkar_wakeup"
	CategoryAfterPrayer CategoryID = "azkar_after_prayer"

	CategoryQuranic   CategoryID = "adiyah_quran"
	CategoryProphetic CategoryID = "adiyah_prophetic"
	CategoryDistress  CategoryID = "adiyah_distress"
	CategoryTravel    CategoryID = "adiyah_travel"
)

// sectionCategories is the canonical category enumeration for each section.
var sectionCategories = map[SectionID][]CategoryID{
	SectionAzkar: {
		CategoryMorning, CategoryEvening, CategorySleep, CategoryWakeup, CategoryAfterPrayer,
	},
	SectionAdiyah: {
		CategoryQuranic, CategoryProphetic, CategoryDistress, CategoryTravel,
	},
}

// ValidSection reports whether id is one of the known sections.
func ValidSection(id SectionID) bool {
	_, ok := sectionCategories[id]
	return ok
}

// ValidCategory reports whether category belongs to section's enumeration.
func ValidCategory(section SectionID, category CategoryID) bool {
	for _, c := range sectionCategories[section] {
		if c == category {
			return true
		}
	}
	return false
}

// Item is a single remembrance or supplication text.
type Item struct {
	ID     string `yaml:"id" json:"id"`
	Text   string `yaml:"text" json:"text"`
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
	Repeat int    `yaml:"repeat,omitempty" json:"repeat,omitempty"`
	Note   string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Category is an ordered group of items within a section.
type Category struct {
	ID    CategoryID `yaml:"id" json:"id"`
	Title string     `yaml:"title" json:"title"`
	Icon  string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Items []Item     `yaml:"items" json:"items"`
}

// Section is a top-level grouping of categories.
type Section struct {
	ID          SectionID  `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Categories  []Category `yaml:"categories" json:"categories"`
}

// ItemRef is an item together with the section and category that hold it.
type ItemRef struct {
	Item
	Section  SectionID  `json:"section"`
	Category CategoryID `json:"category"`
	Position int        `json:"position"`
}
