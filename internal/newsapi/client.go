package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://newsapi.org/v2"

// fallbackErrMsg is shown when a failing response carries no usable message.
const fallbackErrMsg = "Failed to fetch news"

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Client is a NewsAPI client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new NewsAPI client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-success response from the provider. Message carries the
// provider's own error text when the body had one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fallbackErrMsg
}

// categoryMap translates UI category tokens to provider categories. NewsAPI
// files world news under "general"; everything else passes through.
var categoryMap = map[string]string{
	"world": "general",
}

// MapCategory converts a UI category token to the provider's category token.
func MapCategory(category string) string {
	c := strings.ToLower(category)
	if mapped, ok := categoryMap[c]; ok {
		return mapped
	}
	return c
}

// TopHeadlines fetches top headlines for a country.
func (c *Client) TopHeadlines(ctx context.Context, params HeadlinesParams) (*Response, error) {
	q := url.Values{}
	q.Set("country", orDefault(params.Country, "us"))
	q.Set("pageSize", strconv.Itoa(orDefaultInt(params.PageSize, 10)))
	q.Set("page", strconv.Itoa(orDefaultInt(params.Page, 1)))

	return c.fetchArticles(ctx, "/top-headlines", q)
}

// NewsByCategory fetches top headlines for a single category. The UI category
// token is translated through MapCategory first.
func (c *Client) NewsByCategory(ctx context.Context, category string, params HeadlinesParams) (*Response, error) {
	q := url.Values{}
	q.Set("country", orDefault(params.Country, "us"))
	q.Set("pageSize", strconv.Itoa(orDefaultInt(params.PageSize, 8)))
	q.Set("page", strconv.Itoa(orDefaultInt(params.Page, 1)))
	q.Set("category", MapCategory(category))

	return c.fetchArticles(ctx, "/top-headlines", q)
}

// Search runs a free-text query against the provider's full article index.
func (c *Client) Search(ctx context.Context, query string, params SearchParams) (*Response, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("pageSize", strconv.Itoa(orDefaultInt(params.PageSize, 20)))
	q.Set("page", strconv.Itoa(orDefaultInt(params.Page, 1)))
	q.Set("language", orDefault(params.Language, "en"))
	q.Set("sortBy", orDefault(params.SortBy, "publishedAt"))

	return c.fetchArticles(ctx, "/everything", q)
}

// Sources lists publisher sources for a language.
func (c *Client) Sources(ctx context.Context, language string) (*SourcesResponse, error) {
	q := url.Values{}
	q.Set("language", orDefault(language, "en"))

	body, err := c.doRequest(ctx, "/sources", q)
	if err != nil {
		return nil, err
	}

	var response SourcesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse sources response: %w", err)
	}
	return &response, nil
}

func (c *Client) fetchArticles(ctx context.Context, path string, q url.Values) (*Response, error) {
	body, err := c.doRequest(ctx, path, q)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse articles response: %w", err)
	}
	if response.Articles == nil {
		response.Articles = []RawArticle{}
	}
	return &response, nil
}

func (c *Client) doRequest(ctx context.Context, path string, q url.Values) ([]byte, error) {
	q.Set("apiKey", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", strings.TrimRight(c.baseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// parseAPIError extracts the provider's error message from a failing body.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var errBody struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		apiErr.Code = errBody.Code
		apiErr.Message = errBody.Message
	}

	return apiErr
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orDefaultInt(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}
