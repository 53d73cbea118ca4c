package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/CASL0/scraping-tech-books/internal/book"
	scraperrors "github.com/CASL0/scraping-tech-books/internal/errors"
	"github.com/CASL0/scraping-tech-books/internal/fetch"
)

// PostBooks submits every book to url in accumulation order, one JSON
// payload per book. A 409 response means the record already exists
// remotely and is only logged; any other non-201 status aborts the
// remaining submissions with a PostError carrying status and body.
func PostBooks(ctx context.Context, url string, books []book.Book) error {
	client := resty.New().SetTimeout(fetch.Timeout)

	for _, b := range books {
		res, err := client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(newRecord(b)).
			Post(url)
		if err != nil {
			return fmt.Errorf("post %s: %w", url, err)
		}

		switch res.StatusCode() {
		case http.StatusCreated:
			slog.Info("book created", "isbn", b.ISBN)
		case http.StatusConflict:
			slog.Info("book already exists", "isbn", b.ISBN)
		default:
			return scraperrors.NewPostError(res.StatusCode(), res.String())
		}
	}
	return nil
}
