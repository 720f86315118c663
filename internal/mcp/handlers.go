package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/icons"
	"github.com/ziadkadry99/azkar/internal/navigation"
	"github.com/ziadkadry99/azkar/internal/search"
)

// handleListSections renders the section and category tree.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, sec := range s.store.Sections() {
		sb.WriteString(fmt.Sprintf("# %s (%s)\n\n", sec.Title, sec.ID))
		if sec.Description != "" {
			sb.WriteString(sec.Description + "\n\n")
		}
		for _, cat := range sec.Categories {
			sb.WriteString(fmt.Sprintf("- %s %s (`%s`): %d items\n", icons.For(cat), cat.Title, cat.ID, len(cat.Items)))
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetCategory lists every item of one category.
func (s *Server) handleGetCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}

	cat, err := s.store.Category(content.SectionID(section), content.CategoryID(category))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("No category %s/%s. Use list_sections to see what exists.", section, category)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s %s\n\n", icons.For(cat), cat.Title))
	for _, it := range cat.Items {
		writeItem(&sb, it)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetItem returns one item with its location.
func (s *Server) handleGetItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	ref, err := s.store.Item(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("No item with id %q.", id)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Location: %s\n\n", navigation.CategoryRoute(ref.Section, ref.Category).Path()))
	writeItem(&sb, ref.Item)
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchItems runs a normalised text search.
func (s *Server) handleSearchItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", search.DefaultLimit)
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	hits, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(hits) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n\n", len(hits)))
	for _, h := range hits {
		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", h.ID, h.Path))
		sb.WriteString(h.Text + "\n\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleShareLink returns the share URL for an item.
func (s *Server) handleShareLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	ref, err := s.store.Item(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("No item with id %q.", id)), nil
	}
	return mcp.NewToolResultText(s.sharer.Link(ref.Text)), nil
}

func writeItem(sb *strings.Builder, it content.Item) {
	sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", it.ID, it.Text))
	if it.Repeat > 0 {
		sb.WriteString(fmt.Sprintf("Repeat: %d\n", it.Repeat))
	}
	if it.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", it.Source))
	}
	if it.Note != "" {
		sb.WriteString(fmt.Sprintf("Note: %s\n", it.Note))
	}
	sb.WriteString("\n")
}
