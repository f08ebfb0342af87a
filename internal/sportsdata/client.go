package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.sportsdata.io/v3"

// allSports is the fallback key for unknown or unfiltered sports.
const allSports = "all sports"

// scoreEndpoints maps sport names to live-score paths.
var scoreEndpoints = map[string]string{
	"basketball": "nba/scores/json/GamesInProgress",
	"football":   "nfl/scores/json/ScoresByWeek/current",
	"baseball":   "mlb/scores/json/GamesInProgress",
	"soccer":     "soccer/scores/json/LiveScores",
	"hockey":     "nhl/scores/json/GamesInProgress",
	allSports:    "scores/json/LiveScoresAll",
}

// standingsEndpoints maps sport names to standings paths. The all-sports case
// has no single endpoint; Standings issues two fetches instead.
var standingsEndpoints = map[string]string{
	"basketball": "nba/scores/json/Standings/current",
	"football":   "nfl/scores/json/Standings/current",
	"baseball":   "mlb/scores/json/Standings/current",
	"soccer":     "soccer/scores/json/Standings",
	"hockey":     "nhl/scores/json/Standings/current",
}

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

// Client is a sports data API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new sports data client with the given API key.
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

// LiveScores fetches games in progress for a sport. Unknown sport names fall
// back to the all-sports feed.
func (c *Client) LiveScores(ctx context.Context, sport string) ([]LiveScore, error) {
	key := strings.ToLower(sport)
	path, ok := scoreEndpoints[key]
	if !ok {
		path = scoreEndpoints[allSports]
	}

	games, err := c.fetchGames(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live scores: %w", err)
	}

	return shapeLiveScores(games, key), nil
}

// Standings fetches team standings for a sport. The all-sports case has no
// single provider endpoint, so basketball and football standings are fetched
// and concatenated.
func (c *Client) Standings(ctx context.Context, sport string) ([]Standing, error) {
	key := strings.ToLower(sport)

	if key == allSports {
		basketball, err := c.fetchTeams(ctx, standingsEndpoints["basketball"])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch standings for multiple sports: %w", err)
		}
		football, err := c.fetchTeams(ctx, standingsEndpoints["football"])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch standings for multiple sports: %w", err)
		}
		return shapeStandings(append(basketball, football...), allSports), nil
	}

	path, ok := standingsEndpoints[key]
	if !ok {
		return nil, fmt.Errorf("standings not available for %s", sport)
	}

	teams, err := c.fetchTeams(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	return shapeStandings(teams, key), nil
}

func (c *Client) fetchGames(ctx context.Context, path string) ([]rawGame, error) {
	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	var games []rawGame
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to parse scores response: %w", err)
	}
	return games, nil
}

func (c *Client) fetchTeams(ctx context.Context, path string) ([]rawTeam, error) {
	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	var teams []rawTeam
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("failed to parse standings response: %w", err)
	}
	return teams, nil
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s?key=%s", strings.TrimRight(c.baseURL, "/"), path, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, fmt.Errorf("provider returned %s", resp.Status)
	}

	return body, nil
}

// shapeLiveScores branches per sport: basketball and football have bespoke
// mappings, everything else goes through a best-effort generic one.
func shapeLiveScores(games []rawGame, sport string) []LiveScore {
	scores := make([]LiveScore, 0, len(games))
	batch := time.Now().UnixMilli()

	for i, g := range games {
		switch sport {
		case "basketball":
			period := g.Status
			if q := firstNonEmpty(g.Quarter, g.Period); q != "" {
				period = "Q" + q
			}
			scores = append(scores, LiveScore{
				ID:            gameID(g, i, batch),
				HomeTeam:      g.HomeTeam,
				AwayTeam:      g.AwayTeam,
				HomeScore:     g.HomeScore,
				AwayScore:     g.AwayScore,
				Period:        period,
				TimeRemaining: basketballClock(g),
				Sport:         "basketball",
				StartTime:     g.DateTime,
				Status:        g.Status,
			})
		case "football":
			period := g.Status
			if g.Quarter != "" {
				period = "Q" + g.Quarter
			}
			scores = append(scores, LiveScore{
				ID:            gameID(g, i, batch),
				HomeTeam:      g.HomeTeam,
				AwayTeam:      g.AwayTeam,
				HomeScore:     g.HomeScore,
				AwayScore:     g.AwayScore,
				Period:        period,
				TimeRemaining: firstNonEmpty(g.TimeRemaining, g.Status),
				Sport:         "football",
				StartTime:     g.DateTime,
				Status:        g.Status,
			})
		default:
			scores = append(scores, LiveScore{
				ID:            gameID(g, i, batch),
				HomeTeam:      firstNonEmpty(g.HomeTeam, g.Home, "Home Team"),
				AwayTeam:      firstNonEmpty(g.AwayTeam, g.Away, "Away Team"),
				HomeScore:     g.HomeScore,
				AwayScore:     g.AwayScore,
				Period:        firstNonEmpty(g.Period, g.Quarter, g.Status, "Live"),
				TimeRemaining: firstNonEmpty(g.TimeRemaining, g.Clock, g.Status, "-"),
				Sport:         sport,
				StartTime:     firstNonEmpty(g.DateTime, g.StartTime),
				Status:        firstNonEmpty(g.Status, "In Progress"),
			})
		}
	}

	return scores
}

// shapeStandings maps raw team records, preferring the provider's own
// percentage when present and deriving it otherwise.
func shapeStandings(teams []rawTeam, sport string) []Standing {
	standings := make([]Standing, 0, len(teams))
	batch := time.Now().UnixMilli()

	for i, team := range teams {
		standings = append(standings, Standing{
			ID:         teamID(team, i, batch),
			Team:       firstNonEmpty(team.Name, team.Team, "Team"),
			Wins:       team.Wins,
			Losses:     team.Losses,
			Percentage: teamPercentage(team),
			Sport:      sport,
			Conference: firstNonEmpty(team.Conference, team.Group, "-"),
			Division:   firstNonEmpty(team.Division, "-"),
		})
	}

	return standings
}

func teamPercentage(team rawTeam) string {
	if team.Percentage > 0 {
		return stripLeadingZero(team.Percentage)
	}
	if team.WinningPercentage > 0 {
		return stripLeadingZero(team.WinningPercentage)
	}
	return FormatWinPct(team.Wins, team.Losses)
}

// FormatWinPct renders wins/(wins+losses) in the conventional ".XXX" form.
// A team with no games played reads ".000".
func FormatWinPct(wins, losses int) string {
	total := wins + losses
	if total == 0 {
		return ".000"
	}
	return stripLeadingZero(float64(wins) / float64(total))
}

func stripLeadingZero(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 3, 64)
	return strings.TrimPrefix(s, "0")
}

func basketballClock(g rawGame) string {
	if g.TimeRemainingMinutes > 0 {
		return fmt.Sprintf("%d:%02d", g.TimeRemainingMinutes, g.TimeRemainingSeconds)
	}
	return g.Status
}

func gameID(g rawGame, index int, batch int64) string {
	if g.GameID != 0 {
		return strconv.FormatInt(g.GameID, 10)
	}
	if g.AltID != 0 {
		return strconv.FormatInt(g.AltID, 10)
	}
	return fmt.Sprintf("game-%d-%d", index, batch)
}

func teamID(team rawTeam, index int, batch int64) string {
	if team.TeamID != 0 {
		return strconv.FormatInt(team.TeamID, 10)
	}
	if team.AltID != 0 {
		return strconv.FormatInt(team.AltID, 10)
	}
	return fmt.Sprintf("team-%d-%d", index, batch)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
