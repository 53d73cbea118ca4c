package normalize

import (
	"fmt"
	"time"

	"github.com/CASL0/scraping-tech-books/internal/book"
)

// Date layouts in use across the publisher sites.
const (
	// DateSlash is the slash-delimited layout, e.g. 2023/08/10.
	DateSlash = "2006/1/2"
	// DateJapanese is the kanji-labelled layout, e.g. 2023年8月10日.
	DateJapanese = "2006年1月2日"
	// DateOnSale is DateJapanese with the trailing on-sale suffix,
	// e.g. 2023年8月10日発売.
	DateOnSale = "2006年1月2日発売"
)

// ParseDate parses raw with the given layout in JST. A record without a
// valid publication date is not a well-formed Book, so a mismatch is an
// error the caller must propagate.
func ParseDate(raw, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, raw, book.JST)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}
