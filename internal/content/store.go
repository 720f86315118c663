package content

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a section, category, or item lookup misses.
var ErrNotFound = errors.New("not found")

// sectionOrder fixes the presentation order of sections regardless of load order.
var sectionOrder = map[SectionID]int{
	SectionAzkar:  0,
	SectionAdiyah: 1,
}

// Store is the immutable content tree. It is built once and only read afterwards,
// so it is safe for concurrent use without locking.
type Store struct {
	sections []Section
	items    []ItemRef
	byItem   map[string]int
}

// New validates sections and builds a Store from a private copy of them.
func New(sections []Section) (*Store, error) {
	s := &Store{byItem: make(map[string]int)}

	seenSections := make(map[SectionID]bool)
	for _, sec := range sections {
		if !ValidSection(sec.ID) {
			return nil, fmt.Errorf("unknown section %q", sec.ID)
		}
		if seenSections[sec.ID] {
			return nil, fmt.Errorf("duplicate section %q", sec.ID)
		}
		seenSections[sec.ID] = true

		if err := validateSection(sec); err != nil {
			return nil, fmt.Errorf("section %s: %w", sec.ID, err)
		}
		s.sections = append(s.sections, copySection(sec))
	}

	sort.SliceStable(s.sections, func(i, j int) bool {
		return sectionOrder[s.sections[i].ID] < sectionOrder[s.sections[j].ID]
	})

	for _, sec := range s.sections {
		for _, cat := range sec.Categories {
			for pos, it := range cat.Items {
				if _, dup := s.byItem[it.ID]; dup {
					return nil, fmt.Errorf("duplicate item id %q (in %s/%s)", it.ID, sec.ID, cat.ID)
				}
				s.byItem[it.ID] = len(s.items)
				s.items = append(s.items, ItemRef{
					Item:     it,
					Section:  sec.ID,
					Category: cat.ID,
					Position: pos,
				})
			}
		}
	}

	return s, nil
}

func validateSection(sec Section) error {
	if sec.Title == "" {
		return fmt.Errorf("title is required")
	}
	seen := make(map[CategoryID]bool)
	for _, cat := range sec.Categories {
		if !ValidCategory(sec.ID, cat.ID) {
			return fmt.Errorf("category %q does not belong to this section", cat.ID)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category %q", cat.ID)
		}
		seen[cat.ID] = true
		if cat.Title == "" {
			return fmt.Errorf("category %s: title is required", cat.ID)
		}
		for i, it := range cat.Items {
			switch {
			case it.ID == "":
				return fmt.Errorf("category %s: item %d has no id", cat.ID, i)
			case it.Text == "":
				return fmt.Errorf("category %s: item %q has no text", cat.ID, it.ID)
			case it.Repeat < 0:
				return fmt.Errorf("category %s: item %q has negative repeat", cat.ID, it.ID)
			}
		}
	}
	return nil
}

func copySection(sec Section) Section {
	out := sec
	out.Categories = make([]Category, len(sec.Categories))
	for i, cat := range sec.Categories {
		c := cat
		c.Items = append([]Item(nil), cat.Items...)
		out.Categories[i] = c
	}
	return out
}

// Sections returns every section in presentation order. Callers must not
// modify the returned values.
func (s *Store) Sections() []Section {
	return s.sections
}

// Section looks up a section by id.
func (s *Store) Section(id SectionID) (Section, error) {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, nil
		}
	}
	return Section{}, fmt.Errorf("section %q: %w", id, ErrNotFound)
}

// Category looks up a category within a section.
func (s *Store) Category(section SectionID, category CategoryID) (Category, error) {
	sec, err := s.Section(section)
	if err != nil {
		return Category{}, err
	}
	for _, cat := range sec.Categories {
		if cat.ID == category {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("category %s/%s: %w", section, category, ErrNotFound)
}

// Item looks up an item by its globally unique id.
func (s *Store) Item(id string) (ItemRef, error) {
	idx, ok := s.byItem[id]
	if !ok {
		return ItemRef{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return s.items[idx], nil
}

// Items returns all items in presentation order.
func (s *Store) Items() []ItemRef {
	return s.items
}

// Len returns the total number of items.
func (s *Store) Len() int {
	return len(s.items)
}
