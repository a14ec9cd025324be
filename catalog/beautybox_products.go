package catalog

import "context"

// BeautyboxItems fetches the fixed promotional beautybox listing. The item
// list is navigated out of data.product.items; an absent or empty list is
// returned as an empty slice rather than nil. Same soft-failure contract as
// SearchProducts.
func (c *Client) BeautyboxItems(ctx context.Context) interface{} {
	requestURL := c.BaseURL + "/subscription/product/beautybox"

	var result beautyboxResponse
	if err := c.getJSON(ctx, requestURL, &result); err != nil {
		c.logf("Error fetching beautybox products: %v", err)
		return ErrorPayload{Error: "Failed to search products", Details: err.Error()}
	}

	items := result.Data.Product.Items
	if items == nil {
		items = []BeautyboxItem{}
	}
	c.logf("API returned %d products for beautybox", len(items))
	return items
}
