package catalog

import (
	"context"

	"github.com/Haliukaaa/chatbot-beautysecrets/models"
)

// Tool names the remote assistant dispatches on. These must match the
// function tools configured on the assistant itself.
const (
	SearchProductsToolName    = "search_products"
	BeautyboxProductsToolName = "get_beautybox_products"
	SearchBlogsToolName       = "search_blogs"
)

// SearchProductsTool returns a FunctionDeclaration for the catalog keyword search.
func SearchProductsTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        SearchProductsToolName,
		Description: "Search the store catalog by keyword. Returns matching products with names and prices.",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search keyword, e.g. a product name or category",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of products to return (default 10)",
				},
			},
			Required: []string{"query"},
		},
	}
}

// BeautyboxProductsTool returns a FunctionDeclaration for the promotional
// beautybox listing. It takes no parameters.
func BeautyboxProductsTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        BeautyboxProductsToolName,
		Description: "Fetch the items of the current promotional beautybox subscription listing.",
		Parameters: models.Parameters{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}
}

// SearchBlogsTool returns a FunctionDeclaration for the blog article search.
func SearchBlogsTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        SearchBlogsToolName,
		Description: "Search store blog articles by keyword and return the most relevant ones with content.",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search phrase; words longer than three characters are matched against titles",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of articles to return (default 3)",
				},
			},
			Required: []string{"query"},
		},
	}
}

// Executors maps tool names to executors bound to a catalog client. This is
// the dispatch table the tool dispatcher consults on requires_action.
func Executors(c *Client) map[string]models.ToolExecutor {
	return map[string]models.ToolExecutor{
		SearchProductsToolName: func(ctx context.Context, args map[string]interface{}) interface{} {
			query, _ := args["query"].(string)
			limit := 0
			if v, ok := args["limit"].(float64); ok {
				limit = int(v)
			}
			return c.SearchProducts(ctx, query, limit)
		},
		BeautyboxProductsToolName: func(ctx context.Context, args map[string]interface{}) interface{} {
			return c.BeautyboxItems(ctx)
		},
		SearchBlogsToolName: func(ctx context.Context, args map[string]interface{}) interface{} {
			query, _ := args["query"].(string)
			limit := 0
			if v, ok := args["limit"].(float64); ok {
				limit = int(v)
			}
			return c.SearchBlogs(ctx, query, limit)
		},
	}
}
