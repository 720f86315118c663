package site

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/progress"
	"github.com/ziadkadry99/azkar/internal/render"
)

// NotFoundPage is the file static hosts serve for unknown paths.
const NotFoundPage = "404.html"

// Generator writes every view of a content store as a static HTML site.
type Generator struct {
	Store     *content.Store
	Renderer  *render.Renderer
	OutputDir string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator that writes into outputDir.
func NewGenerator(store *content.Store, renderer *render.Renderer, outputDir string) *Generator {
	return &Generator{
		Store:     store,
		Renderer:  renderer,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
	}
}

// sitePage is one file to write.
type sitePage struct {
	relPath string
	route   navigation.Route
}

// pages lists every file in presentation order.
func (g *Generator) pages() []sitePage {
	pages := []sitePage{{relPath: "index.html", route: navigation.Home}}
	for _, sec := range g.Store.Sections() {
		route := navigation.SectionRoute(sec.ID)
		pages = append(pages, sitePage{relPath: routeFile(route), route: route})
		for _, cat := range sec.Categories {
			route := navigation.CategoryRoute(sec.ID, cat.ID)
			pages = append(pages, sitePage{relPath: routeFile(route), route: route})
		}
	}
	pages = append(pages, sitePage{
		relPath: NotFoundPage,
		route:   navigation.Route{View: navigation.ViewCategory, Invalid: true},
	})
	return pages
}

func routeFile(r navigation.Route) string {
	return path.Join(strings.TrimPrefix(r.Path(), "/"), "index.html")
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(filepath.Join(g.OutputDir, "assets"), 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "assets", "style.css"), []byte(render.CSS()), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "assets", "app.js"), []byte(render.JS()), 0o644); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	pages := g.pages()
	reporter.Start(len(pages))
	for i, p := range pages {
		if err := g.renderPage(p); err != nil {
			return i, fmt.Errorf("rendering %s: %w", p.relPath, err)
		}
		reporter.Update(i+1, p.relPath)
	}
	reporter.Finish()

	return len(pages), nil
}

// renderPage resolves one route and writes it to its file.
func (g *Generator) renderPage(p sitePage) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(p.relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	// Compute depth for relative CSS/JS and link references.
	depth := strings.Count(p.relPath, "/")

	var buf bytes.Buffer
	page := navigation.Resolve(g.Store, p.route)
	opts := render.Options{Static: true, Depth: depth, Rooted: p.relPath == NotFoundPage}
	if err := g.Renderer.Page(&buf, page, opts); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}
