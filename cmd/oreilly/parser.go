package oreilly

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/normalize"
)

// parseCatalog extracts one Book per table row of the catalog page. A
// page without matching rows yields an empty result, not an error.
func parseCatalog(content string) ([]book.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse catalog html: %w", err)
	}

	var books []book.Book
	var parseErr error
	doc.Find("#bookTable > tbody > tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		b, err := parseRow(row)
		if err != nil {
			parseErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		books = append(books, b)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return books, nil
}

func parseRow(row *goquery.Selection) (book.Book, error) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return book.Book{}, fmt.Errorf("row has no cells")
	}
	isbn := strings.TrimSpace(cells.First().Text())

	titleCell := row.Find("td.title")
	if titleCell.Length() == 0 {
		return book.Book{}, fmt.Errorf("title cell missing")
	}
	// The catalog is served without a charset declaration, so titles
	// arrive latin-1 mangled and need the round-trip repair.
	title := normalize.RepairEncoding(strings.TrimSpace(titleCell.First().Text()))

	priceCell := row.Find("td.price")
	if priceCell.Length() == 0 {
		return book.Book{}, fmt.Errorf("price cell missing")
	}
	price := normalize.FormatPrice(strings.TrimSpace(priceCell.First().Text()), normalize.PricePlain)

	dateStr := strings.TrimSpace(cells.Last().Text())
	publishedAt, err := normalize.ParseDate(dateStr, normalize.DateSlash)
	if err != nil {
		return book.Book{}, err
	}

	href, ok := row.Find("a").First().Attr("href")
	if !ok {
		return book.Book{}, fmt.Errorf("detail link missing")
	}
	url, err := normalize.ResolveURL(BaseURL, href)
	if err != nil {
		return book.Book{}, err
	}

	return book.Book{
		Title:       title,
		ISBN:        isbn,
		Price:       price,
		URL:         url,
		PublishedAt: publishedAt,
		Publisher:   book.PublisherOreilly,
	}, nil
}
