package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func articlesPayload() map[string]interface{} {
	return map[string]interface{}{
		"status":       "ok",
		"totalResults": 2,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"id": "reuters", "name": "Reuters"},
				"author":      "Jane Smith",
				"title":       "Markets rally on rate cut hopes",
				"description": "Stocks climbed across the board.",
				"url":         "https://example.com/markets",
				"urlToImage":  "https://example.com/markets.jpg",
				"publishedAt": "2026-03-14T10:00:00Z",
				"content":     "Full story content.",
			},
			{
				"source":      map[string]interface{}{"name": "AP"},
				"title":       "Storm heads for the coast",
				"url":         "https://example.com/storm",
				"publishedAt": "2026-03-14T09:30:00Z",
			},
		},
	}
}

func TestClient_TopHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/top-headlines" {
			t.Errorf("expected /top-headlines, got %q", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("country") != "us" {
			t.Errorf("expected default country us, got %q", q.Get("country"))
		}
		if q.Get("pageSize") != "10" {
			t.Errorf("expected default pageSize 10, got %q", q.Get("pageSize"))
		}
		if q.Get("page") != "1" {
			t.Errorf("expected default page 1, got %q", q.Get("page"))
		}
		if q.Get("apiKey") != "test-key" {
			t.Errorf("expected apiKey to be attached, got %q", q.Get("apiKey"))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload())
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.TopHeadlines(context.Background(), HeadlinesParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(resp.Articles))
	}
	if resp.Articles[0].Source.Name != "Reuters" {
		t.Errorf("expected source name Reuters, got %q", resp.Articles[0].Source.Name)
	}
	if resp.Articles[0].Title != "Markets rally on rate cut hopes" {
		t.Errorf("unexpected title %q", resp.Articles[0].Title)
	}
}

func TestClient_TopHeadlines_CustomParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("country") != "gb" {
			t.Errorf("expected country gb, got %q", q.Get("country"))
		}
		if q.Get("pageSize") != "5" {
			t.Errorf("expected pageSize 5, got %q", q.Get("pageSize"))
		}
		if q.Get("page") != "3" {
			t.Errorf("expected page 3, got %q", q.Get("page"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload())
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.TopHeadlines(context.Background(), HeadlinesParams{Country: "gb", PageSize: 5, Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_NewsByCategory_MapsWorldToGeneral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("category") != "general" {
			t.Errorf("world should be sent to the provider as general, got %q", q.Get("category"))
		}
		if q.Get("pageSize") != "8" {
			t.Errorf("category queries default to pageSize 8, got %q", q.Get("pageSize"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload())
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.NewsByCategory(context.Background(), "world", HeadlinesParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMapCategory(t *testing.T) {
	cases := map[string]string{
		"world":      "general",
		"World":      "general",
		"technology": "technology",
		"Business":   "business",
		"health":     "health",
		"sports":     "sports",
	}
	for in, want := range cases {
		if got := MapCategory(in); got != want {
			t.Errorf("MapCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("expected /everything, got %q", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("q") != "trending OR popular" {
			t.Errorf("expected query to pass through, got %q", q.Get("q"))
		}
		if q.Get("pageSize") != "20" {
			t.Errorf("expected default pageSize 20, got %q", q.Get("pageSize"))
		}
		if q.Get("language") != "en" {
			t.Errorf("expected default language en, got %q", q.Get("language"))
		}
		if q.Get("sortBy") != "publishedAt" {
			t.Errorf("expected default sortBy publishedAt, got %q", q.Get("sortBy"))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload())
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.Search(context.Background(), "trending OR popular", SearchParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(resp.Articles))
	}
}

func TestClient_Search_SortByPopularity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sortBy"); got != "popularity" {
			t.Errorf("expected sortBy popularity, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload())
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Search(context.Background(), "ai", SearchParams{SortBy: "popularity", PageSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Sources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sources" {
			t.Errorf("expected /sources, got %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"sources": []map[string]interface{}{
				{"id": "bbc-news", "name": "BBC News", "category": "general", "language": "en", "country": "gb"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.Sources(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].ID != "bbc-news" {
		t.Fatalf("expected the bbc-news source, got %+v", resp.Sources)
	}
}

func TestClient_SurfacesProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"code":    "apiKeyInvalid",
			"message": "Your API key is invalid or incorrect.",
		})
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))

	_, err := client.TopHeadlines(context.Background(), HeadlinesParams{})
	if err == nil {
		t.Fatal("expected an error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "Your API key is invalid or incorrect." {
		t.Errorf("error should carry the provider message, got %q", apiErr.Error())
	}
}

func TestClient_StaticFallbackWhenErrorBodyUnusable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Search(context.Background(), "x", SearchParams{})
	if err == nil {
		t.Fatal("expected an error for 500 response")
	}
	if err.Error() != "Failed to fetch news" {
		t.Errorf("expected static fallback message, got %q", err.Error())
	}
}

func TestClient_IgnoresUnexpectedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ok",
			"totalResults": 1,
			"newEnvelopeField": map[string]interface{}{
				"surprise": true,
			},
			"articles": []map[string]interface{}{
				{
					"source":         map[string]interface{}{"name": "Reuters"},
					"title":          "Headline",
					"url":            "https://example.com/a",
					"brandNewField":  "future provider feature",
					"anotherNewOne":  []string{"a", "b"},
					"publishedAt":    "2026-03-14T10:00:00Z",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.TopHeadlines(context.Background(), HeadlinesParams{})
	if err != nil {
		t.Fatalf("unexpected fields should not break parsing: %v", err)
	}
	if len(resp.Articles) != 1 || resp.Articles[0].Title != "Headline" {
		t.Fatalf("expected the single article, got %+v", resp.Articles)
	}
}

func TestClient_EmptyArticleList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ok",
			"totalResults": 0,
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.NewsByCategory(context.Background(), "science", HeadlinesParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Articles == nil {
		t.Fatal("articles should be an empty slice, not nil")
	}
	if len(resp.Articles) != 0 {
		t.Fatalf("expected 0 articles, got %d", len(resp.Articles))
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "articles": [`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.TopHeadlines(context.Background(), HeadlinesParams{})
	if err == nil {
		t.Fatal("truncated JSON should surface a parse error")
	}
}
