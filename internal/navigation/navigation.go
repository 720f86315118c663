// Package navigation maps browser-style paths onto the three content views
// and resolves each view against the content store.
package navigation

import (
	"strings"

	"github.com/ziadkadry99/azkar/internal/content"
)

// View identifies which of the three screens a route shows.
type View int

const (
	ViewHome View = iota
	ViewSection
	ViewCategory
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewSection:
		return "section"
	case ViewCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Route is a parsed navigation path.
type Route struct {
	View     View
	Section  content.SectionID
	Category content.CategoryID
	// Invalid is set for paths with too many segments.
	Invalid bool
}

// Home is the root route.
var Home = Route{View: ViewHome}

// SectionRoute builds the route for a section's category list.
func SectionRoute(id content.SectionID) Route {
	return Route{View: ViewSection, Section: id}
}

// CategoryRoute builds the route for a category's item list.
func CategoryRoute(section content.SectionID, category content.CategoryID) Route {
	return Route{View: ViewCategory, Section: section, Category: category}
}

// Parse turns a path such as "/azkar/azkar_morning" into a Route. Empty
// segments are ignored. Parse never fails; unknown ids surface on Resolve.
func Parse(path string) Route {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}

	switch len(segs) {
	case 0:
		return Home
	case 1:
		return SectionRoute(content.SectionID(segs[0]))
	case 2:
		return CategoryRoute(content.SectionID(segs[0]), content.CategoryID(segs[1]))
	default:
		return Route{View: ViewCategory, Invalid: true}
	}
}

// Path returns the canonical path for r.
func (r Route) Path() string {
	switch r.View {
	case ViewSection:
		return "/" + string(r.Section)
	case ViewCategory:
		return "/" + string(r.Section) + "/" + string(r.Category)
	default:
		return "/"
	}
}

// Back returns the route one level up. Home is its own parent.
func Back(r Route) Route {
	switch r.View {
	case ViewCategory:
		if r.Invalid {
			return Home
		}
		return SectionRoute(r.Section)
	default:
		return Home
	}
}

// Page is a route resolved against the store.
type Page struct {
	Route    Route
	NotFound bool
	Sections []content.Section
	Section  content.Section
	Category content.Category
}

// Resolve looks up everything the route's view needs. Missing ids produce a
// NotFound page rather than an error.
func Resolve(store *content.Store, r Route) Page {
	p := Page{Route: r}
	if r.Invalid {
		p.NotFound = true
		return p
	}

	switch r.View {
	case ViewHome:
		p.Sections = store.Sections()
	case ViewSection:
		sec, err := store.Section(r.Section)
		if err != nil {
			p.NotFound = true
			return p
		}
		p.Section = sec
	case ViewCategory:
		sec, err := store.Section(r.Section)
		if err != nil {
			p.NotFound = true
			return p
		}
		cat, err := store.Category(r.Section, r.Category)
		if err != nil {
			p.NotFound = true
			return p
		}
		p.Section = sec
		p.Category = cat
	}
	return p
}

// Title is the heading shown for the page.
func (p Page) Title() string {
	switch {
	case p.NotFound:
		return "غير موجود"
	case p.Route.View == ViewSection:
		return p.Section.Title
	case p.Route.View == ViewCategory:
		return p.Category.Title
	default:
		return ""
	}
}
