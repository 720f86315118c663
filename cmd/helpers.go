package cmd

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/config"
	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/render"
	"github.com/ziadkadry99/azkar/internal/search"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `azkar init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadStore loads the configured content, or the bundled content when no
// paths are configured.
func loadStore() (*content.Store, error) {
	store, err := content.Load(appConfig.Content.Paths)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return store, nil
}

// lookupItem resolves an item id with a message that points at `azkar browse`.
func lookupItem(store *content.Store, id string) (content.ItemRef, error) {
	ref, err := store.Item(id)
	if err != nil {
		return content.ItemRef{}, fmt.Errorf("%w\nRun `azkar browse` or `azkar search` to find item ids", err)
	}
	return ref, nil
}

func newSharer() (*actions.Sharer, error) {
	return actions.NewSharer(appConfig.Share.URLTemplate, appConfig.Share.Attribution)
}

func newRenderer(sharer *actions.Sharer) (*render.Renderer, error) {
	return render.New(sharer, appConfig.Site.Title)
}

func buildIndex(ctx context.Context, store *content.Store) (*search.Index, error) {
	index, err := search.Build(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("building search index: %w", err)
	}
	return index, nil
}
