// Package book defines the canonical record produced by every site scraper.
package book

import "time"

// JST is the fixed +09:00 offset all publication dates carry.
var JST = time.FixedZone("JST", 9*60*60)

// Publisher names as they appear on the source sites.
const (
	PublisherOreilly  = "オライリー・ジャパン"
	PublisherShoeisha = "翔泳社"
	PublisherGihyo    = "技術評論社"
)

// Book represents one catalog entry, normalized across publishers.
// Price is the formatted currency string, or empty when the source
// listed no parseable price.
type Book struct {
	Title       string
	ISBN        string
	Price       string
	URL         string
	PublishedAt time.Time
	Publisher   string
}
