// Package gihyo scrapes the Gihyo (技術評論社) genre listings.
package gihyo

import (
	"fmt"

	"github.com/CASL0/scraping-tech-books/internal/book"
	"github.com/CASL0/scraping-tech-books/internal/scraper"
)

// BaseURL is the site root the genre pages and detail links hang off.
const BaseURL = "https://gihyo.jp/"

// maxPages caps pagination per genre. The stop condition is the first
// page yielding zero records; the cap guards against that signal
// misfiring on a markup change.
const maxPages = 101

// Categories are the genre query codes the catalog is partitioned into.
// Each is iterated independently with its own page counter.
var Categories = []string{
	"0601", // C・C++
	"0602", // Java
	"0603", // Python・PHP・Ruby・Perlなど
	"0604", // C#・VB・.NETなど
	"0605", // iOS・Androidなど
	"0607", // Webアプリケーション開発
	"0608", // SE仕事術・SE読み物
	"0609", // 開発技法・ソフトウェアテスト・UML
	"0611", // JavaScript
	"0612", // 機械学習・AI・データ分析
	"0701", // サーバ・インフラ・ネットワーク
	"0704", // UNIX・Linux・FreeBSD
	"0705", // データベース・SQLなど
}

// Source is the Gihyo site adapter.
type Source struct{}

var _ scraper.Source = (*Source)(nil)

// New creates the Gihyo source.
func New() *Source { return &Source{} }

func (s *Source) Name() string { return "gihyo" }

func (s *Source) Categories() []string { return Categories }

func (s *Source) MaxPages() int { return maxPages }

func (s *Source) PageURL(category string, page int) string {
	return fmt.Sprintf("%sbook/genre?s=%s&page=%d", BaseURL, category, page)
}

// Parse extracts the page's records; a genre's pagination continues only
// while pages keep yielding at least one record. The site renders no
// explicit end-of-listing marker.
func (s *Source) Parse(content string, _ int) ([]book.Book, bool, error) {
	books, err := parseGenrePage(content)
	if err != nil {
		return nil, false, err
	}
	return books, len(books) > 0, nil
}
