// Package render turns resolved navigation pages into HTML. The same
// templates back the live server and the generated static site.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/icons"
	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/search"
)

// Options control how links and assets are addressed.
type Options struct {
	// Static produces relative links ending in index.html, for pages read
	// straight from disk. Depth is the page's directory depth below the root.
	Static bool
	Depth  int
	// Rooted makes static links absolute from the site root, for pages a
	// host may serve at any path, such as 404.html.
	Rooted bool
}

// Renderer renders pages with a shared template set.
type Renderer struct {
	tmpl      *template.Template
	md        goldmark.Markdown
	sharer    *actions.Sharer
	siteTitle string
}

// New parses the page template.
func New(sharer *actions.Sharer, siteTitle string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{
		tmpl:      tmpl,
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sharer:    sharer,
		siteTitle: siteTitle,
	}, nil
}

type sectionCard struct {
	Href        string
	Title       string
	Description template.HTML
	Count       int
}

type categoryCard struct {
	Href  string
	Icon  string
	Title string
	Count int
}

type itemCard struct {
	ID     string
	Text   string
	Source string
	Repeat int
	Note   template.HTML
	Share  string
	Href   string
}

type pageData struct {
	SiteTitle   string
	Title       string
	Kind        string
	Base        string
	HomeHref    string
	BackHref    string
	SearchHref  string
	Live        bool
	Description template.HTML
	Icon        string
	Sections    []sectionCard
	Categories  []categoryCard
	Items       []itemCard
	Query       string
}

// CSS returns the stylesheet served at assets/style.css.
func CSS() string { return cssContent }

// JS returns the script served at assets/app.js.
func JS() string { return jsContent }

// Page renders a resolved navigation page.
func (r *Renderer) Page(w io.Writer, page navigation.Page, opts Options) error {
	data := r.base(opts)
	data.Title = page.Title()
	data.BackHref = r.href(navigation.Back(page.Route), opts)

	switch {
	case page.NotFound:
		data.Kind = "notfound"
		data.BackHref = data.HomeHref
	case page.Route.View == navigation.ViewHome:
		data.Kind = "home"
		data.Title = r.siteTitle
		data.BackHref = ""
		for _, sec := range page.Sections {
			count := 0
			for _, cat := range sec.Categories {
				count += len(cat.Items)
			}
			data.Sections = append(data.Sections, sectionCard{
				Href:        r.href(navigation.SectionRoute(sec.ID), opts),
				Title:       sec.Title,
				Description: r.markdown(sec.Description),
				Count:       count,
			})
		}
	case page.Route.View == navigation.ViewSection:
		data.Kind = "section"
		data.Description = r.markdown(page.Section.Description)
		for _, cat := range page.Section.Categories {
			data.Categories = append(data.Categories, categoryCard{
				Href:  r.href(navigation.CategoryRoute(page.Section.ID, cat.ID), opts),
				Icon:  icons.For(cat),
				Title: cat.Title,
				Count: len(cat.Items),
			})
		}
	case page.Route.View == navigation.ViewCategory:
		data.Kind = "category"
		data.Icon = icons.For(page.Category)
		for _, it := range page.Category.Items {
			data.Items = append(data.Items, r.item(it, ""))
		}
	}

	return r.execute(w, data)
}

// Search renders a result list for query.
func (r *Renderer) Search(w io.Writer, query string, hits []search.Hit, opts Options) error {
	data := r.base(opts)
	data.Kind = "search"
	data.Title = "بحث"
	data.Query = query
	data.BackHref = data.HomeHref
	for _, h := range hits {
		href := r.href(navigation.CategoryRoute(h.Section, h.Category), opts)
		data.Items = append(data.Items, r.item(content.Item{
			ID: h.ID, Text: h.Text, Source: h.Source, Note: h.Note, Repeat: h.Repeat,
		}, href))
	}
	return r.execute(w, data)
}

func (r *Renderer) execute(w io.Writer, data pageData) error {
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s page: %w", data.Kind, err)
	}
	return nil
}

func (r *Renderer) base(opts Options) pageData {
	base := "/"
	if opts.Static && !opts.Rooted {
		base = strings.Repeat("../", opts.Depth)
	}
	return pageData{
		SiteTitle:  r.siteTitle,
		Base:       base,
		HomeHref:   r.href(navigation.Home, opts),
		SearchHref: base + "search",
		Live:       !opts.Static,
	}
}

func (r *Renderer) item(it content.Item, href string) itemCard {
	return itemCard{
		ID:     it.ID,
		Text:   it.Text,
		Source: it.Source,
		Repeat: it.Repeat,
		Note:   r.markdown(it.Note),
		Share:  r.sharer.Link(it.Text),
		Href:   href,
	}
}

// href addresses a route either as a server path or as a relative file.
func (r *Renderer) href(route navigation.Route, opts Options) string {
	if !opts.Static {
		return route.Path()
	}
	rel := strings.TrimPrefix(route.Path(), "/")
	if rel != "" {
		rel += "/"
	}
	if opts.Rooted {
		return "/" + rel
	}
	return strings.Repeat("../", opts.Depth) + rel + "index.html"
}

func (r *Renderer) markdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
