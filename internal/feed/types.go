// Package feed normalizes provider articles and aggregates the home feed.
//
// This package enables newsdesk to:
// - Map partially-absent provider records into a total display shape
// - Maintain the composite home feed (breaking, featured, blend, trending)
// - Refresh the feed on a fixed schedule
package feed

// Article is the stable display shape. Every field is always populated; the
// normalizer substitutes documented defaults for anything the provider omits.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	URL         string `json:"url"`
}

// Default values substituted by Normalize.
const (
	DefaultTitle    = "No Title"
	DefaultSource   = "Unknown Source"
	DefaultSummary  = "No summary available."
	DefaultImageURL = "https://via.placeholder.com/400x200?text=News+Image"
	DefaultURL      = "#"
)
