package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/search"
)

func testStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.New([]content.Section{{
		ID:          content.SectionAzkar,
		Title:       "الأذكار",
		Description: "أذكار **اليوم**",
		Categories: []content.Category{{
			ID:    content.CategoryMorning,
			Title: "أذكار الصباح",
			Icon:  "sun",
			Items: []content.Item{{ID: "m1", Text: "سبحان الله", Source: "مسلم", Repeat: 3, Note: "بعد *الفجر*"}},
		}},
	}})
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	return store
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	sharer, err := actions.NewSharer("https://wa.me/?text={text}", "")
	if err != nil {
		t.Fatalf("NewSharer: %v", err)
	}
	r, err := New(sharer, "أذكار وأدعية")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func renderPage(t *testing.T, r *Renderer, store *content.Store, path string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	page := navigation.Resolve(store, navigation.Parse(path))
	if err := r.Page(&buf, page, opts); err != nil {
		t.Fatalf("Page(%s): %v", path, err)
	}
	return buf.String()
}

func TestHomePage(t *testing.T) {
	out := renderPage(t, testRenderer(t), testStore(t), "/", Options{})

	for _, want := range []string{
		`dir="rtl"`,
		`href="/azkar"`,
		"الأذكار",
		"<strong>اليوم</strong>",
		`href="/assets/style.css"`,
		`data-live="true"`,
		`action="/search"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(out, `class="back"`) {
		t.Error("home page should not have a back link")
	}
}

func TestSectionPage(t *testing.T) {
	out := renderPage(t, testRenderer(t), testStore(t), "/azkar", Options{})

	for _, want := range []string{
		`href="/azkar/azkar_morning"`,
		"أذكار الصباح",
		"🌅",
		`class="back" href="/"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("section page missing %q", want)
		}
	}
}

func TestCategoryPage(t *testing.T) {
	out := renderPage(t, testRenderer(t), testStore(t), "/azkar/azkar_morning", Options{})

	for _, want := range []string{
		`data-id="m1"`,
		"سبحان الله",
		"التكرار: 3",
		"مسلم",
		"<em>الفجر</em>",
		`class="back" href="/azkar"`,
		"https://wa.me/?text=",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("category page missing %q", want)
		}
	}
	if got := strings.Count(out, `class="item"`); got != 1 {
		t.Errorf("item count = %d, want 1", got)
	}
}

func TestNotFoundPage(t *testing.T) {
	r := testRenderer(t)
	store := testStore(t)
	for _, path := range []string{"/hymns", "/azkar/adiyah_travel", "/a/b/c"} {
		out := renderPage(t, r, store, path, Options{})
		if !strings.Contains(out, "غير موجود") {
			t.Errorf("%s: expected not-found page", path)
		}
		if strings.Contains(out, `class="item"`) {
			t.Errorf("%s: not-found page should list no items", path)
		}
	}
}

func TestStaticLinks(t *testing.T) {
	r := testRenderer(t)
	store := testStore(t)

	home := renderPage(t, r, store, "/", Options{Static: true})
	if !strings.Contains(home, `href="azkar/index.html"`) {
		t.Error("static home should link to azkar/index.html")
	}
	if !strings.Contains(home, `data-live="false"`) {
		t.Error("static page should not be live")
	}
	if strings.Contains(home, `class="search"`) {
		t.Error("static page should not render the search form")
	}

	cat := renderPage(t, r, store, "/azkar/azkar_morning", Options{Static: true, Depth: 2})
	for _, want := range []string{
		`href="../../assets/app.js"`,
		`class="back" href="../../azkar/index.html"`,
		`href="../../index.html"`,
	} {
		if !strings.Contains(cat, want) {
			t.Errorf("static category page missing %q", want)
		}
	}
}

func TestRootedNotFoundLinks(t *testing.T) {
	r := testRenderer(t)
	store := testStore(t)

	out := renderPage(t, r, store, "/a/b/c", Options{Static: true, Rooted: true})
	for _, want := range []string{
		`href="/assets/style.css"`,
		`src="/assets/app.js"`,
		`class="brand" href="/"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rooted page missing %q", want)
		}
	}
	if strings.Contains(out, `href="index.html"`) {
		t.Error("rooted page should not use relative home links")
	}
}

func TestSearchPage(t *testing.T) {
	r := testRenderer(t)
	var buf bytes.Buffer
	hits := []search.Hit{{
		ID:       "m1",
		Text:     "سبحان الله",
		Repeat:   33,
		Section:  content.SectionAzkar,
		Category: content.CategoryMorning,
	}}
	if err := r.Search(&buf, "سبحان", hits, Options{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `href="/azkar/azkar_morning#item-m1"`) {
		t.Error("search hit should link to its category")
	}
	if !strings.Contains(out, "التكرار: 33") {
		t.Error("search hit should show its repeat count")
	}
	if !strings.Contains(out, `value="سبحان"`) {
		t.Error("search box should keep the query")
	}

	buf.Reset()
	if err := r.Search(&buf, "zzz", nil, Options{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(buf.String(), "لا توجد نتائج") {
		t.Error("empty search should say there are no results")
	}
}

func TestAssets(t *testing.T) {
	if !strings.Contains(CSS(), ".item") {
		t.Error("stylesheet missing item rules")
	}
	if !strings.Contains(JS(), "/ws/playback") {
		t.Error("script missing playback socket")
	}
}

func TestScriptPlayback(t *testing.T) {
	js := JS()
	for _, want := range []string{
		// live sessions speak in the server's configured language
		"speak(msg.text, msg.lang,",
		"u.lang = lang ||",
		// a second click on a pending item stops it
		"active === id || pending === id",
		"pending = null; active = id;",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("script missing %q", want)
		}
	}
}
