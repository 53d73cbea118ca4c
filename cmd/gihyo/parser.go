package gihyo

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/normalize"
)

// parseGenrePage extracts one Book per list item of a genre page.
func parseGenrePage(content string) ([]book.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse genre html: %w", err)
	}

	var books []book.Book
	var parseErr error
	doc.Find("#mainbook > ul.magazineList01.bookList01 > li.clearfix").
		EachWithBreak(func(i int, item *goquery.Selection) bool {
			b, err := parseItem(item)
			if err != nil {
				parseErr = fmt.Errorf("item %d: %w", i, err)
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

func parseItem(item *goquery.Selection) (book.Book, error) {
	titleAnchor := item.Find("h3 a").First()
	if titleAnchor.Length() == 0 {
		return book.Book{}, fmt.Errorf("title anchor missing")
	}
	title := strings.TrimSpace(titleAnchor.Text())

	priceText := item.Find("p.price")
	if priceText.Length() == 0 {
		return book.Book{}, fmt.Errorf("price paragraph missing")
	}
	price := normalize.FormatPrice(strings.TrimSpace(priceText.First().Text()), normalize.PriceYenSuffix)

	dateText := item.Find("p.sellingdate")
	if dateText.Length() == 0 {
		return book.Book{}, fmt.Errorf("selling date paragraph missing")
	}
	publishedAt, err := normalize.ParseDate(strings.TrimSpace(dateText.First().Text()), normalize.DateOnSale)
	if err != nil {
		return book.Book{}, err
	}

	href, ok := item.Find("a[href]").First().Attr("href")
	if !ok {
		return book.Book{}, fmt.Errorf("detail link missing")
	}
	url, err := normalize.ResolveURL(BaseURL, href)
	if err != nil {
		return book.Book{}, err
	}

	// The site publishes no ISBN field; the detail link ends in it.
	segments := strings.Split(href, "/")
	isbn := segments[len(segments)-1]

	return book.Book{
		Title:       title,
		ISBN:        isbn,
		Price:       price,
		URL:         url,
		PublishedAt: publishedAt,
		Publisher:   book.PublisherGihyo,
	}, nil
}
