// Package main provides the newsdesk CLI entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"newsdesk/internal/config"
	"newsdesk/internal/display"
	"newsdesk/internal/feed"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/sportsdata"
	"newsdesk/pkg/browser"
)

var version = "0.1.0"

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the newsdesk CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "newsdesk",
		Short:   "Aggregate news headlines and sports data in your terminal",
		Long:    "Newsdesk pulls top headlines, category feeds, trending searches and live sports data into a unified terminal view.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("newsdesk version {{.Version}}\n")

	rootCmd.AddCommand(newHomeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newCategoryCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSportsCmd())
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newOpenCmd())

	return rootCmd
}

// newFeedService wires config into a headlines client and feed service.
func newFeedService(opts ...feed.ServiceOption) (*feed.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := newsapi.NewClient(cfg.NewsAPIKey,
		newsapi.WithBaseURL(cfg.NewsBaseURL),
		newsapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	opts = append([]feed.ServiceOption{
		feed.WithRefreshSchedule(cfg.RefreshSchedule),
		feed.WithCountry(cfg.Country),
	}, opts...)
	return feed.NewService(client, opts...), nil
}

func newSportsClient() (*sportsdata.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.SportsAPIKey == "" {
		return nil, fmt.Errorf("NEWSDESK_SPORTS_API_KEY is required for sports commands")
	}

	return sportsdata.NewClient(cfg.SportsAPIKey,
		sportsdata.WithBaseURL(cfg.SportsBaseURL),
		sportsdata.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	), nil
}

// newHomeCmd creates the home subcommand.
func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Display the aggregated home feed",
		Long:  "Fetch breaking news, the category blend and trending articles, then render them once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newFeedService()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			if err := svc.Refresh(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error loading news: %v\n", err)
			}

			renderHome(cmd, svc)
			return nil
		},
	}
}

// newWatchCmd creates the watch subcommand.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the home feed refreshing on a schedule",
		Long:  "Run the home feed refresh on the configured cadence (default every 5 minutes) until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var svc *feed.Service
			svc, err := newFeedService(feed.WithOnRefresh(func() {
				renderHome(cmd, svc)
			}))
			if err != nil {
				return err
			}

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Stop()

			<-ctx.Done()
			fmt.Fprintln(cmd.OutOrStdout(), "Stopping.")
			return nil
		},
	}
}

// newCategoryCmd creates the category subcommand.
func newCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Display headlines for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newFeedService()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			articles := svc.NewsByCategory(ctx, args[0])
			if err := svc.Err(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error loading news: %v\n", err)
			}

			renderer := display.NewRenderer()
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSection(args[0], articles))
			return nil
		},
	}
}

// newSearchCmd creates the search subcommand.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search news articles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newFeedService()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			articles := svc.SearchArticles(ctx, strings.Join(args, " "))
			if err := svc.Err(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error searching news: %v\n", err)
			}

			renderer := display.NewRenderer()
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSection("search", articles))
			return nil
		},
	}
}

// newSportsCmd creates the sports subcommand with scores and standings.
func newSportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sports",
		Short: "Display live scores and standings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "scores [sport]",
		Short: "Display games in progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSportsClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			scores, err := client.LiveScores(ctx, sportArg(args))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error loading scores: %v\n", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), display.NewRenderer().RenderScores(scores))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "standings [sport]",
		Short: "Display team standings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSportsClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			standings, err := client.Standings(ctx, sportArg(args))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error loading standings: %v\n", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), display.NewRenderer().RenderStandings(standings))
			return nil
		},
	})

	return cmd
}

func sportArg(args []string) string {
	if len(args) == 0 {
		return "all sports"
	}
	return args[0]
}

// newSourcesCmd creates the sources subcommand.
func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [language]",
		Short: "List available publisher sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := newsapi.NewClient(cfg.NewsAPIKey,
				newsapi.WithBaseURL(cfg.NewsBaseURL),
				newsapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			language := ""
			if len(args) > 0 {
				language = args[0]
			}

			resp, err := client.Sources(ctx, language)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error loading sources: %v\n", err)
				fmt.Fprint(cmd.OutOrStdout(), display.NewRenderer().RenderSources(nil))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), display.NewRenderer().RenderSources(resp.Sources))
			return nil
		},
	}
}

// newOpenCmd creates the open subcommand.
func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open an article link in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := browser.Open(args[0]); err != nil {
				return fmt.Errorf("could not open browser: %w", err)
			}
			return nil
		},
	}
}

func renderHome(cmd *cobra.Command, svc *feed.Service) {
	renderer := display.NewRenderer()

	var featured *feed.Article
	if f, ok := svc.Featured(); ok {
		featured = &f
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderHome(svc.Breaking(), featured, svc.Articles(), svc.Trending()))
}
