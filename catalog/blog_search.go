package catalog

import (
	"context"
	"fmt"
	"strings"
)

const blogPagesToScan = 3

// fetchBlogs fetches one page of the blog listing.
func (c *Client) fetchBlogs(ctx context.Context, page int) ([]Blog, error) {
	var result blogListResponse
	url := fmt.Sprintf("%s/blog/list?page=%d", c.BaseURL, page)
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Blogs, nil
}

// fetchBlogContent fetches the full article for one blog id.
func (c *Client) fetchBlogContent(ctx context.Context, blogID string) (*Blog, error) {
	var blog Blog
	if err := c.getJSON(ctx, c.BaseURL+"/blog/"+blogID, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// SearchBlogs scans the first few blog listing pages, keeps articles whose
// title contains any query keyword longer than three characters, and fetches
// full content for the top matches. Listing or content fetch failures
// degrade to fewer results; only a total failure produces an ErrorPayload.
func (c *Client) SearchBlogs(ctx context.Context, query string, limit int) interface{} {
	if limit <= 0 {
		limit = 3
	}

	keywords := strings.Fields(strings.ToLower(query))
	var allBlogs []Blog

	for page := 1; page <= blogPagesToScan; page++ {
		blogs, err := c.fetchBlogs(ctx, page)
		if err != nil {
			c.logf("Error fetching blogs page %d: %v", page, err)
			break
		}
		if len(blogs) == 0 {
			break
		}
		allBlogs = append(allBlogs, blogs...)
	}

	var relevant []Blog
	for _, blog := range allBlogs {
		title := strings.ToLower(blog.Title)
		for _, keyword := range keywords {
			if len(keyword) > 3 && strings.Contains(title, keyword) {
				relevant = append(relevant, blog)
				break
			}
		}
	}

	if len(relevant) > limit {
		relevant = relevant[:limit]
	}

	withContent := make([]Blog, 0, len(relevant))
	for _, blog := range relevant {
		full, err := c.fetchBlogContent(ctx, blog.ID)
		if err != nil {
			c.logf("Error fetching blog content for ID %s: %v", blog.ID, err)
			withContent = append(withContent, blog)
			continue
		}
		withContent = append(withContent, *full)
	}

	if withContent == nil {
		withContent = []Blog{}
	}
	return BlogSearchResult{RelevantBlogs: withContent, Query: query}
}
