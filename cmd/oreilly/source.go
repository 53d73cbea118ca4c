// Package oreilly scrapes the O'Reilly Japan catalog.
package oreilly

import (
	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/scraper"
)

// BaseURL is the catalog listing page. The whole catalog lives on this
// single page, so the source never paginates.
const BaseURL = "https://www.oreilly.co.jp/catalog/"

// Source is the O'Reilly Japan site adapter.
type Source struct{}

var _ scraper.Source = (*Source)(nil)

// New creates the O'Reilly Japan source.
func New() *Source { return &Source{} }

func (s *Source) Name() string { return "oreilly" }

func (s *Source) Categories() []string { return []string{""} }

func (s *Source) MaxPages() int { return 1 }

func (s *Source) PageURL(string, int) string { return BaseURL }

// Parse extracts every catalog row from the single listing page and
// never asks for another one.
func (s *Source) Parse(content string, _ int) ([]book.Book, bool, error) {
	books, err := parseCatalog(content)
	return books, false, err
}
