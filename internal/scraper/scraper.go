// Package scraper drives the per-site pagination loops and accumulates
// the records every site adapter produces.
package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/fetch"
)

// Source describes one publisher site: how to build listing URLs, how
// far pagination may run, and how to turn one fetched page into records.
type Source interface {
	// Name identifies the source in logs and error messages.
	Name() string

	// Categories enumerates the catalog partitions that are iterated
	// independently, each with its own page counter. Sites without
	// partitions return a single empty string.
	Categories() []string

	// MaxPages is the hard page cap per category. It is a safety limit
	// against a mis-detected termination signal, not an expected count.
	MaxPages() int

	// PageURL returns the listing URL for one (category, page) pair.
	PageURL(category string, page int) string

	// Parse extracts records from one listing page and reports whether
	// pagination should continue past this page. Parse errors are fatal
	// to the run; an empty result is not by itself an error.
	Parse(content string, page int) ([]book.Book, bool, error)
}

// Run scrapes every source in order, strictly sequentially, and returns
// the accumulated records. The first fetch or parse failure aborts the
// whole run with no partial result.
func Run(ctx context.Context, fetcher fetch.Fetcher, sources []Source) ([]book.Book, error) {
	var books []book.Book
	for _, src := range sources {
		collected, err := runSource(ctx, fetcher, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Name(), err)
		}
		books = append(books, collected...)
	}
	return books, nil
}

func runSource(ctx context.Context, fetcher fetch.Fetcher, src Source) ([]book.Book, error) {
	var books []book.Book
	for _, category := range src.Categories() {
		for page := 0; page < src.MaxPages(); page++ {
			url := src.PageURL(category, page)

			content, err := fetcher.Fetch(ctx, url)
			if err != nil {
				return nil, err
			}

			found, more, err := src.Parse(content, page)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", url, err)
			}
			books = append(books, found...)

			if len(found) > 0 || more {
				slog.Info("page scraped", "url", url, "count", len(found))
			}
			if !more {
				break
			}
		}
	}
	return books, nil
}
