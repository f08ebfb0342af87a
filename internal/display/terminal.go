// Package display provides terminal output formatting for newsdesk.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsdesk/internal/feed"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/sportsdata"
)

const separator = " • "

// sectionColors styles section headers by feed section or category.
var sectionColors = map[string]lipgloss.Color{
	"breaking":   lipgloss.Color("#f85149"), // red
	"featured":   lipgloss.Color("#d29922"), // amber
	"trending":   lipgloss.Color("#ffa657"), // orange
	"business":   lipgloss.Color("#ffa657"),
	"technology": lipgloss.Color("#58a6ff"), // blue
	"health":     lipgloss.Color("#7ee787"), // green
	"sports":     lipgloss.Color("#d2a8ff"), // purple
	"world":      lipgloss.Color("#a5d6ff"), // light blue
	"search":     lipgloss.Color("#c9d1d9"), // white
}

var defaultSectionColor = lipgloss.Color("#8b949e") // gray

// Renderer formats feed and sports shapes for terminal display.
type Renderer struct {
	header lipgloss.Style
	title  lipgloss.Style
	meta   lipgloss.Style
	body   lipgloss.Style
}

// NewRenderer creates a renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{
		header: lipgloss.NewStyle().Bold(true),
		title:  lipgloss.NewStyle().Bold(true),
		meta:   lipgloss.NewStyle().Faint(true),
		body:   lipgloss.NewStyle(),
	}
}

// RenderArticle formats a single article.
func (r *Renderer) RenderArticle(a feed.Article) string {
	var lines []string

	lines = append(lines, r.title.Render(a.Title))
	lines = append(lines, "  "+r.meta.Render(a.Source+separator+a.PublishedAt))
	lines = append(lines, "  "+r.body.Render(Truncate(a.Summary, 120)))
	if a.URL != "" && a.URL != feed.DefaultURL {
		lines = append(lines, "  "+r.meta.Render(a.URL))
	}

	return strings.Join(lines, "\n") + "\n"
}

// RenderSection formats a named list of articles under a colored header.
func (r *Renderer) RenderSection(section string, articles []feed.Article) string {
	var b strings.Builder

	b.WriteString(r.sectionHeader(section) + "\n\n")

	if len(articles) == 0 {
		b.WriteString("No articles to display.\n")
		return b.String()
	}

	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.RenderArticle(a))
	}

	return b.String()
}

// RenderHome formats the full composite home feed.
func (r *Renderer) RenderHome(breaking []feed.Article, featured *feed.Article, blended, trending []feed.Article) string {
	var sections []string

	if featured != nil {
		sections = append(sections, r.sectionHeader("featured")+"\n\n"+r.RenderArticle(*featured))
	}
	sections = append(sections, r.RenderSection("breaking", breaking))
	sections = append(sections, r.RenderSection("for you", blended))
	sections = append(sections, r.RenderSection("trending", trending))

	return strings.Join(sections, "\n")
}

// RenderScores formats live game scores.
func (r *Renderer) RenderScores(scores []sportsdata.LiveScore) string {
	if len(scores) == 0 {
		return "No games in progress.\n"
	}

	var b strings.Builder
	for _, s := range scores {
		b.WriteString(r.title.Render(fmt.Sprintf("%s %d - %s %d", s.AwayTeam, s.AwayScore, s.HomeTeam, s.HomeScore)))
		b.WriteString("\n  " + r.meta.Render(s.Period+separator+s.TimeRemaining+separator+s.Status) + "\n")
	}
	return b.String()
}

// RenderStandings formats standings as an aligned table.
func (r *Renderer) RenderStandings(standings []sportsdata.Standing) string {
	if len(standings) == 0 {
		return "No standings available.\n"
	}

	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("%-24s %4s %4s %6s  %s", "TEAM", "W", "L", "PCT", "DIV")) + "\n")
	for _, s := range standings {
		div := s.Division
		if s.Conference != "-" {
			div = s.Conference + "/" + s.Division
		}
		b.WriteString(fmt.Sprintf("%-24s %4d %4d %6s  %s\n", Truncate(s.Team, 24), s.Wins, s.Losses, s.Percentage, div))
	}
	return b.String()
}

// RenderSources formats the publisher source list.
func (r *Renderer) RenderSources(sources []newsapi.SourceInfo) string {
	if len(sources) == 0 {
		return "No sources available.\n"
	}

	var b strings.Builder
	b.WriteString(r.header.Render("SOURCES") + "\n\n")
	for _, s := range sources {
		b.WriteString(r.title.Render(s.Name) + "\n")
		b.WriteString("  " + r.meta.Render(s.ID+separator+s.Category+separator+s.Language+"/"+s.Country) + "\n")
	}
	return b.String()
}

func (r *Renderer) sectionHeader(section string) string {
	color, ok := sectionColors[strings.ToLower(section)]
	if !ok {
		color = defaultSectionColor
	}
	style := r.header.Foreground(color)
	return style.Render(strings.ToUpper(section))
}

// Truncate shortens text to maxLen, adding "..." if truncated.
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}
