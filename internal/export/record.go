// Package export holds the terminal sinks a run hands its accumulated
// records to: the CSV file, the JSON file, and the remote submitter.
package export

import (
	"time"

	"github.com/CASL0/scraping-tech-books/internal/book"
)

// record is the wire shape of one book, shared by the JSON sinks. Price
// is a pointer so an absent price serializes as null rather than "".
type record struct {
	Title       string  `json:"title"`
	ISBN        string  `json:"isbn"`
	Price       *string `json:"price"`
	URL         string  `json:"url"`
	Publisher   string  `json:"publisher"`
	PublishedAt string  `json:"publishedAt"`
}

func newRecord(b book.Book) record {
	r := record{
		Title:       b.Title,
		ISBN:        b.ISBN,
		URL:         b.URL,
		Publisher:   b.Publisher,
		PublishedAt: b.PublishedAt.Format(time.RFC3339),
	}
	if b.Price != "" {
		price := b.Price
		r.Price = &price
	}
	return r
}
