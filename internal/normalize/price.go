// Package normalize converts raw text extracted from publisher pages
// into canonical field values.
package normalize

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price patterns used by the publisher sites. Some sites append the 円
// glyph to the amount, some list bare digit groups.
var (
	PricePlain     = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)`)
	PriceYenSuffix = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)円`)
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatPrice extracts the first amount in raw that matches pattern and
// renders it as a Japanese yen string (e.g. ￥3,960). Returns "" when
// raw does not match the pattern; the record is still usable, so this
// only logs a diagnostic.
func FormatPrice(raw string, pattern *regexp.Regexp) string {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		slog.Warn("price did not match expected pattern", "raw", raw)
		return ""
	}
	amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		slog.Warn("price digits did not parse", "raw", raw, "error", err)
		return ""
	}
	return yenPrinter.Sprintf("￥%d", amount)
}
