package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/CASL0/scraping-tech-books/internal/book"
)

// WriteJSON writes the whole collection to filename as an indented JSON
// array using the same field names as the remote submitter. Any prior
// file is overwritten.
func WriteJSON(books []book.Book, filename string) error {
	records := make([]record, 0, len(books))
	for _, b := range books {
		records = append(records, newRecord(b))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal books: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}

	slog.Info("wrote JSON file", "filename", filename, "books", len(books))
	return nil
}
