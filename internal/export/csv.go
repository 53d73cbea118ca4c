package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/CASL0/scraping-tech-books/internal/book"
)

// csvHeader is the fixed column order of the tabular output.
var csvHeader = []string{"title", "isbn", "price", "url", "published_at", "publisher"}

// WriteCSV writes the whole collection to filename as a header row plus
// one row per book, dates as date-only ISO-8601, an absent price as an
// empty field. Any prior file is overwritten.
func WriteCSV(books []book.Book, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, b := range books {
		row := []string{
			b.Title,
			b.ISBN,
			b.Price,
			b.URL,
			b.PublishedAt.Format("2006-01-02"),
			b.Publisher,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	slog.Info("wrote CSV file", "filename", filename, "books", len(books))
	return nil
}
