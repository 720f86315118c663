package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var bundled embed.FS

// Load builds a Store from the YAML files matched by patterns. With no
// patterns, the bundled content is used.
func Load(patterns []string) (*Store, error) {
	if len(patterns) == 0 {
		return LoadBundled()
	}
	return LoadFiles(patterns)
}

// LoadBundled builds a Store from the content compiled into the binary.
func LoadBundled() (*Store, error) {
	paths, err := fs.Glob(bundled, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing bundled content: %w", err)
	}

	var sections []Section
	for _, p := range paths {
		data, err := bundled.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading bundled %s: %w", p, err)
		}
		sec, err := decodeSection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing bundled %s: %w", p, err)
		}
		sections = append(sections, sec)
	}
	return New(sections)
}

// LoadFiles builds a Store from files on disk. Patterns support ** globs.
func LoadFiles(patterns []string) (*Store, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad content pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no content files match %v", patterns)
	}
	sort.Strings(paths)

	sections := make([]Section, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", p, err)
		}
		sec, err := decodeSection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing content %s: %w", p, err)
		}
		sections = append(sections, sec)
	}
	return New(sections)
}

func decodeSection(data []byte) (Section, error) {
	var sec Section
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sec); err != nil {
		return Section{}, err
	}
	return sec, nil
}
