package catalog

import (
	"context"
	"fmt"
	"net/url"
)

// SearchProducts searches the catalog by keyword. The query term is
// URL-encoded so reserved characters survive the round trip; limit defaults
// to 10 when not positive. On any network error or non-success status it
// returns an ErrorPayload instead of raising.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) interface{} {
	if limit <= 0 {
		limit = 10
	}

	c.logf("Searching products with keyword: %q, limit: %d", query, limit)
	requestURL := fmt.Sprintf("%s/product/search?keyword=%s&per_page=%d&page=1",
		c.BaseURL, url.QueryEscape(query), limit)

	var result SearchResponse
	if err := c.getJSON(ctx, requestURL, &result); err != nil {
		c.logf("Error searching products: %v", err)
		return ErrorPayload{Error: "Failed to search products", Details: err.Error()}
	}

	c.logf("API returned %d products for search: %s", len(result.Data), query)
	return result
}
