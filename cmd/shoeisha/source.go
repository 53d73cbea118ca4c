// Package shoeisha scrapes the Shoeisha book listing.
package shoeisha

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/scraper"
)

// BaseURL is the site root the listing pages and detail links hang off.
const BaseURL = "https://www.shoeisha.co.jp/"

// maxPages caps pagination. The live listing is far shorter; the cap
// only guards against a broken no-results detection.
const maxPages = 501

// Source is the Shoeisha site adapter.
type Source struct{}

var _ scraper.Source = (*Source)(nil)

// New creates the Shoeisha source.
func New() *Source { return &Source{} }

func (s *Source) Name() string { return "shoeisha" }

func (s *Source) Categories() []string { return []string{""} }

func (s *Source) MaxPages() int { return maxPages }

func (s *Source) PageURL(_ string, page int) string {
	return fmt.Sprintf("%sbook/list?p=%d", BaseURL, page)
}

// Parse stops pagination only when the page carries the explicit
// no-results phrase. A page without entry containers does not by itself
// end the listing; the site is trusted to state the end outright.
func (s *Source) Parse(content string, _ int) ([]book.Book, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, false, fmt.Errorf("parse listing html: %w", err)
	}
	if noItemsFound(doc) {
		return nil, false, nil
	}
	books, err := parseList(doc)
	return books, true, err
}
