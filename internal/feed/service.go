package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"

	"newsdesk/internal/newsapi"
)

// defaultSchedule re-runs the home feed fetch every five minutes.
const defaultSchedule = "@every 5m"

// blendPart is one category slice of the blended home list.
type blendPart struct {
	category string
	pageSize int
}

// The blend is 2 business + 2 technology + 1 health + 1 sports, in that order.
var blendParts = []blendPart{
	{"business", 2},
	{"technology", 2},
	{"health", 1},
	{"sports", 1},
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithRefreshSchedule overrides the refresh cadence (a cron expression or
// the @every form).
func WithRefreshSchedule(schedule string) ServiceOption {
	return func(s *Service) {
		s.schedule = schedule
	}
}

// WithCountry sets the country attached to every headline query.
func WithCountry(country string) ServiceOption {
	return func(s *Service) {
		s.country = country
	}
}

// WithCategory sets an initial category whose articles are fetched into the
// dedicated category slot when the service starts.
func WithCategory(category string) ServiceOption {
	return func(s *Service) {
		s.category = category
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithOnRefresh registers a callback invoked after every completed refresh
// cycle, successful or not.
func WithOnRefresh(fn func()) ServiceOption {
	return func(s *Service) {
		s.onRefresh = fn
	}
}

// Service owns the composite home-feed state: breaking news, the featured
// article, the category blend, and the trending list. All accessors are safe
// for concurrent use.
type Service struct {
	client    *newsapi.Client
	logger    *slog.Logger
	schedule  string
	country   string
	cron      *cron.Cron
	onRefresh func()

	mu               sync.Mutex
	breaking         []Article
	featured         *Article
	articles         []Article
	trending         []Article
	categoryArticles []Article
	category         string
	loading          bool
	err              error
}

// NewService creates a feed service around the given headlines client.
func NewService(client *newsapi.Client, opts ...ServiceOption) *Service {
	s := &Service{
		client:   client,
		logger:   slog.Default(),
		schedule: defaultSchedule,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Refresh runs one full fetch cycle: breaking headlines, the four-category
// blend, then the trending search, sequentially. The cycle is atomic on
// failure: the first failing call records its error and aborts, leaving the
// remaining slots untouched. Slots already fetched in this cycle keep their
// new values.
func (s *Service) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)
	s.setErr(nil)

	breakingResp, err := s.client.TopHeadlines(ctx, newsapi.HeadlinesParams{Country: s.country, PageSize: 5})
	if err != nil {
		return s.fail("breaking news fetch failed", err)
	}
	breaking := Normalize("breaking", breakingResp.Articles)

	s.mu.Lock()
	s.breaking = lo.Slice(breaking, 0, 4)
	if len(breaking) > 0 {
		first := breaking[0]
		s.featured = &first
	}
	s.mu.Unlock()

	var blended []Article
	for _, part := range blendParts {
		resp, err := s.client.NewsByCategory(ctx, part.category, newsapi.HeadlinesParams{Country: s.country, PageSize: part.pageSize})
		if err != nil {
			return s.fail("category blend fetch failed", err, "category", part.category)
		}
		blended = append(blended, Normalize(part.category, resp.Articles)...)
	}

	s.mu.Lock()
	s.articles = blended
	s.mu.Unlock()

	trendingResp, err := s.client.Search(ctx, "trending OR popular", newsapi.SearchParams{
		PageSize: 5,
		SortBy:   "popularity",
	})
	if err != nil {
		return s.fail("trending search failed", err)
	}

	s.mu.Lock()
	s.trending = lo.Slice(Normalize("trending", trendingResp.Articles), 0, 5)
	s.mu.Unlock()

	s.logger.Info("feed refresh complete",
		"breaking", len(breaking),
		"blended", len(blended),
		"trending", len(trendingResp.Articles))
	return nil
}

// Start runs one refresh immediately and then on the configured schedule.
// Callers must pair it with Stop to release the scheduler.
func (s *Service) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("initial feed refresh failed", "error", err)
	}
	s.notifyRefresh()

	if s.category != "" {
		s.SetCategory(ctx, s.category)
	}

	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.Refresh(jobCtx); err != nil {
			s.logger.Error("scheduled feed refresh failed", "error", err)
		}
		s.notifyRefresh()
	})
	if err != nil {
		return err
	}

	c.Start()
	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()
	return nil
}

// Stop cancels the refresh schedule and waits for any in-flight cycle to
// finish. No refresh runs after Stop returns.
func (s *Service) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
}

// NewsByCategory fetches a category's articles on demand, bypassing the
// composite state. On failure the error slot is set and an empty slice
// returned; callers distinguish "no data" from "error" via Err.
func (s *Service) NewsByCategory(ctx context.Context, category string) []Article {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.NewsByCategory(ctx, category, newsapi.HeadlinesParams{Country: s.country, PageSize: 10})
	if err != nil {
		s.setErr(err)
		return []Article{}
	}
	return Normalize(category, resp.Articles)
}

// SearchArticles runs a free-text search on demand, same contract as
// NewsByCategory.
func (s *Service) SearchArticles(ctx context.Context, query string) []Article {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Search(ctx, query, newsapi.SearchParams{PageSize: 20})
	if err != nil {
		s.setErr(err)
		return []Article{}
	}
	return Normalize("search", resp.Articles)
}

// SetCategory switches the dedicated category slot and fetches its articles.
func (s *Service) SetCategory(ctx context.Context, category string) {
	s.mu.Lock()
	s.category = category
	s.mu.Unlock()

	if category == "" {
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.NewsByCategory(ctx, category, newsapi.HeadlinesParams{Country: s.country, PageSize: 10})
	if err != nil {
		s.setErr(err)
		s.logger.Error("category fetch failed", "category", category, "error", err)
		return
	}

	s.mu.Lock()
	s.categoryArticles = Normalize(category, resp.Articles)
	s.mu.Unlock()
}

// Breaking returns the breaking-news list (top 4 of the last fetch).
func (s *Service) Breaking() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Article(nil), s.breaking...)
}

// Featured returns the featured article, if one has been fetched.
func (s *Service) Featured() (Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.featured == nil {
		return Article{}, false
	}
	return *s.featured, true
}

// Articles returns the blended category list.
func (s *Service) Articles() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Article(nil), s.articles...)
}

// Trending returns the trending list (top 5 of the popularity search).
func (s *Service) Trending() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Article(nil), s.trending...)
}

// CategoryArticles returns the dedicated category slot.
func (s *Service) CategoryArticles() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Article(nil), s.categoryArticles...)
}

// Loading reports whether a fetch is in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failing fetch, or nil.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Service) fail(msg string, err error, args ...any) error {
	s.setErr(err)
	s.logger.Error(msg, append(args, "error", err)...)
	return err
}

func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Service) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Service) notifyRefresh() {
	if s.onRefresh != nil {
		s.onRefresh()
	}
}
