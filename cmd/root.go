// Package cmd wires the command line to the scraping pipeline.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/CASL0/scraping-tech-books/cmd/gihyo"
	"github.com/CASL0/scraping-tech-books/cmd/oreilly"
	"github.com/CASL0/scraping-tech-books/cmd/shoeisha"
	"github.com/CASL0/scraping-tech-books/internal/config"
	"github.com/CASL0/scraping-tech-books/internal/export"
	"github.com/CASL0/scraping-tech-books/internal/fetch"
	"github.com/CASL0/scraping-tech-books/internal/scraper"
)

var (
	runScrape = scraper.Run
	writeCSV  = export.WriteCSV
	writeJSON = export.WriteJSON
	postBooks = export.PostBooks
)

// CLI represents the complete command structure for the scraper
type CLI struct {
	// Global flags
	Post   string `short:"p" help:"POST each scraped book to this URL instead of writing a file"`
	Output string `short:"o" help:"Path of the CSV output file"`
	JSON   bool   `help:"Write the collection as a JSON file instead of CSV"`

	Scrape ScrapeCmd `cmd:"" default:"withargs" help:"Scrape the publisher sites"`
}

// ScrapeCmd scrapes one publisher, or all of them without an argument
type ScrapeCmd struct {
	Site string `arg:"" optional:"" help:"Restrict the run to one publisher (oreilly, shoeisha, gihyo)"`
}

// Run executes the scraping pipeline and hands the collection to the
// selected sink.
func (s *ScrapeCmd) Run() error {
	sources, err := selectSources(s.Site)
	if err != nil {
		return err
	}

	fetcher := fetch.NewClient(config.RequestsPerSecond)
	books, err := runScrape(context.Background(), fetcher, sources)
	if err != nil {
		return err
	}
	slog.Info("scraping finished", "books", len(books))

	if config.PostURL != "" {
		return postBooks(context.Background(), config.PostURL, books)
	}
	if config.WriteJSON {
		return writeJSON(books, config.JSONOutputFile)
	}
	return writeCSV(books, config.OutputFile)
}

func selectSources(site string) ([]scraper.Source, error) {
	all := []scraper.Source{oreilly.New(), shoeisha.New(), gihyo.New()}
	if site == "" {
		return all, nil
	}
	for _, src := range all {
		if src.Name() == site {
			return []scraper.Source{src}, nil
		}
	}
	return nil, fmt.Errorf("unknown site %q (expected oreilly, shoeisha, or gihyo)", site)
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("scraping-tech-books"),
		kong.Description("Scrape tech-book catalogs from publisher sites into a CSV/JSON file or a remote API."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("OutputFile", "tech-books.csv")
	viper.SetDefault("JSONOutputFile", "tech-books.json")
	viper.SetDefault("RequestsPerSecond", 2)

	// Enable environment variable support
	viper.AutomaticEnv()
	// Bind specific environment variables to config keys
	if err := viper.BindEnv("PostURL", "SCRAPER_POST_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// The config file is optional; only a malformed one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Flags win over config-file values
	if cli.Post != "" {
		config.SetPostURL(cli.Post)
	}
	if cli.Output != "" {
		config.SetOutputFile(cli.Output)
	}
	if cli.JSON {
		config.SetWriteJSON(true)
	}
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
