package catalog

// Typed envelopes for the beautysecrets catalog API. Responses are validated
// at this boundary: absent or malformed nested fields become typed empty
// results instead of propagating silently.

// ErrorPayload is the soft-failure value returned to the tool dispatcher in
// place of a Go error, so the assistant always receives a serializable
// output and can decide how to react.
type ErrorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Product is one catalog item as returned by the search endpoint.
type Product struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Brand     string      `json:"brand,omitempty"`
	Price     interface{} `json:"price,omitempty"`
	SalePrice interface{} `json:"sale_price,omitempty"`
	Image     string      `json:"image,omitempty"`
	URL       string      `json:"url,omitempty"`
}

// SearchResponse is the envelope of GET /product/search.
type SearchResponse struct {
	Data    []Product `json:"data"`
	Total   int       `json:"total,omitempty"`
	PerPage int       `json:"per_page,omitempty"`
	Page    int       `json:"current_page,omitempty"`
}

// BeautyboxItem is one item of the promotional beautybox listing.
type BeautyboxItem struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price interface{} `json:"price,omitempty"`
	Image string      `json:"image,omitempty"`
}

// beautyboxResponse is the envelope of GET /subscription/product/beautybox.
// The item list lives under data.product.items.
type beautyboxResponse struct {
	Data struct {
		Product struct {
			Items []BeautyboxItem `json:"items"`
		} `json:"product"`
	} `json:"data"`
}

// Blog is one article from the blog endpoints.
type Blog struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description,omitempty"`
}

// blogListResponse is the envelope of GET /blog/list.
type blogListResponse struct {
	Blogs []Blog `json:"blogs"`
}

// BlogSearchResult is the value returned by the search_blogs tool.
type BlogSearchResult struct {
	RelevantBlogs []Blog `json:"relevantBlogs"`
	Query         string `json:"query"`
}
