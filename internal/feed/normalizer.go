package feed

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"newsdesk/internal/newsapi"
	"newsdesk/internal/timeutil"
)

// Normalize maps raw provider articles into the total Article shape. The
// provider supplies no article ids, so each gets a synthetic
// "<prefix>-<index>-<millis>" id, unique within the batch but not stable
// across fetches.
func Normalize(prefix string, raw []newsapi.RawArticle) []Article {
	batch := time.Now().UnixMilli()

	return lo.Map(raw, func(a newsapi.RawArticle, i int) Article {
		return Article{
			ID:          fmt.Sprintf("%s-%d-%d", prefix, i, batch),
			Title:       fallback(a.Title, DefaultTitle),
			Source:      fallback(a.Source.Name, DefaultSource),
			PublishedAt: timeutil.FormatPublished(a.PublishedAt),
			Summary:     fallback(a.Description, fallback(a.Content, DefaultSummary)),
			ImageURL:    fallback(a.URLToImage, DefaultImageURL),
			URL:         fallback(a.URL, DefaultURL),
		}
	})
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
