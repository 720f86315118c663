package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the content sections (azkar and adiyah) with their categories and item counts."),
)

// getCategoryTool defines the get_category MCP tool.
var getCategoryTool = mcp.NewTool("get_category",
	mcp.WithDescription("Get every item of one category, in presentation order."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section id"),
		mcp.Enum("azkar", "adiyah"),
	),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Category id, e.g. azkar_morning or adiyah_quran"),
	),
)

// getItemTool defines the get_item MCP tool.
var getItemTool = mcp.NewTool("get_item",
	mcp.WithDescription("Get a single item's text, source, repeat count and note by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Item id"),
	),
)

// searchItemsTool defines the search_items MCP tool.
var searchItemsTool = mcp.NewTool("search_items",
	mcp.WithDescription("Search item text. Arabic diacritics and letter variants are ignored; every word must match."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

// shareLinkTool defines the share_link MCP tool.
var shareLinkTool = mcp.NewTool("share_link",
	mcp.WithDescription("Build the outbound share link for an item."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Item id"),
	),
)
