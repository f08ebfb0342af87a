// Package newsapi provides a client for the NewsAPI headlines provider.
//
// This package enables newsdesk to:
// - Fetch top headlines with country and pagination parameters
// - Fetch headlines filtered by category
// - Run free-text searches across the "everything" index
// - List available publisher sources
package newsapi

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawArticle is an article exactly as the provider returns it. Every field is
// optional; callers normalize before display. PublishedAt stays a string
// because the provider sometimes omits or garbles it.
type RawArticle struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Response is the provider's article list envelope.
type Response struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

// SourceInfo describes a publisher from the sources endpoint.
type SourceInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Language string `json:"language"`
	Country  string `json:"country"`
}

// SourcesResponse is the provider's sources list envelope.
type SourcesResponse struct {
	Status  string       `json:"status"`
	Sources []SourceInfo `json:"sources"`
}

// HeadlinesParams configures top-headlines queries. Zero values take the
// documented defaults.
type HeadlinesParams struct {
	Country  string // default "us"
	PageSize int    // default 10 (8 for category queries)
	Page     int    // default 1
}

// SearchParams configures full-text search queries.
type SearchParams struct {
	PageSize int    // default 20
	Page     int    // default 1
	Language string // default "en"
	SortBy   string // default "publishedAt"
}
