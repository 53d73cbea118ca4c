package shoeisha

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/normalize"
)

// noItemsPhrase is the exact sentence the site renders past the last
// listing page. It is the sole pagination-termination signal.
const noItemsPhrase = "該当の書籍は見つかりませんでした。"

func noItemsFound(doc *goquery.Document) bool {
	found := false
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if strings.Contains(p.Text(), noItemsPhrase) {
			found = true
			return false
		}
		return true
	})
	return found
}

// parseList extracts one Book per catalog-entry container.
func parseList(doc *goquery.Document) ([]book.Book, error) {
	var books []book.Book
	var parseErr error
	doc.Find("#cx_contents_block > div > section > div.row.list div.textWrapper").
		EachWithBreak(func(i int, entry *goquery.Selection) bool {
			b, err := parseEntry(entry)
			if err != nil {
				parseErr = fmt.Errorf("entry %d: %w", i, err)
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

func parseEntry(entry *goquery.Selection) (book.Book, error) {
	heading := entry.Find("h3").First()
	if heading.Length() == 0 {
		return book.Book{}, fmt.Errorf("title heading missing")
	}
	title := strings.TrimSpace(heading.Text())

	dateStr, err := labelledValue(entry, "発売：")
	if err != nil {
		return book.Book{}, err
	}
	publishedAt, err := normalize.ParseDate(dateStr, normalize.DateJapanese)
	if err != nil {
		return book.Book{}, err
	}

	isbnValue := entry.Find("dd.isbn")
	if isbnValue.Length() == 0 {
		return book.Book{}, fmt.Errorf("isbn value missing")
	}
	isbn := strings.TrimSpace(isbnValue.First().Text())

	priceStr, err := labelledValue(entry, "定価：")
	if err != nil {
		return book.Book{}, err
	}
	price := normalize.FormatPrice(priceStr, normalize.PriceYenSuffix)

	href, ok := heading.Find("a").First().Attr("href")
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
		Publisher:   book.PublisherShoeisha,
	}, nil
}

// labelledValue locates the dt whose trimmed text equals label and
// returns the trimmed text of its adjacent dd.
func labelledValue(entry *goquery.Selection, label string) (string, error) {
	var value string
	var valueErr error
	matched := false
	entry.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if strings.TrimSpace(dt.Text()) != label {
			return true
		}
		matched = true
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			valueErr = fmt.Errorf("value for label %q missing", label)
			return false
		}
		value = strings.TrimSpace(dd.Text())
		return false
	})
	if valueErr != nil {
		return "", valueErr
	}
	if !matched {
		return "", fmt.Errorf("label %q missing", label)
	}
	return value, nil
}
