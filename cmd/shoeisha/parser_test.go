package shoeisha

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CASL0/scraping-tech-books/internal/book"
)

func listPage(entries string) string {
	return fmt.Sprintf(`<html><body>
<div id="cx_contents_block"><div><section>
<div class="row list">
%s
</div>
</section></div></div>
</body></html>`, entries)
}

func bookEntry(title, href, date, isbn, price string) string {
	return fmt.Sprintf(`<div class="textWrapper">
<h3><a href="%s">%s</a></h3>
<dl>
<dt>発売：</dt><dd>%s</dd>
<dt>ISBN：</dt><dd class="isbn">%s</dd>
<dt>定価：</dt><dd>%s</dd>
</dl>
</div>`, href, title, date, isbn, price)
}

const noItemsPage = `<html><body>
<div id="cx_contents_block"><div><section>
<p>該当の書籍は見つかりませんでした。</p>
</section></div></div>
</body></html>`

func parsePage(t *testing.T, content string) ([]book.Book, bool, error) {
	t.Helper()
	return New().Parse(content, 0)
}

func TestParseSingleEntry(t *testing.T) {
	page := listPage(bookEntry(
		"独習Go",
		"/book/detail/9784798172804",
		"2022年11月14日",
		"9784798172804",
		"3,300円（本体3,000円＋税10%）",
	))

	books, more, err := parsePage(t, page)
	require.NoError(t, err)
	assert.True(t, more, "a populated page must not stop pagination")
	require.Len(t, books, 1)

	got := books[0]
	assert.Equal(t, "独習Go", got.Title)
	assert.Equal(t, "9784798172804", got.ISBN)
	assert.Equal(t, "￥3,300", got.Price)
	assert.Equal(t, "https://www.shoeisha.co.jp/book/detail/9784798172804", got.URL)
	assert.True(t, got.PublishedAt.Equal(time.Date(2022, 11, 14, 0, 0, 0, 0, book.JST)))
	assert.Equal(t, book.PublisherShoeisha, got.Publisher)
}

func TestParseNoResultsPageStopsPagination(t *testing.T) {
	books, more, err := parsePage(t, noItemsPage)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.False(t, more, "the no-results phrase is the termination signal")
}

func TestParseEmptyPageWithoutPhraseContinues(t *testing.T) {
	// No entry containers, but no no-results phrase either: the adapter
	// must not treat this as the end of the listing.
	books, more, err := parsePage(t, listPage(""))
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.True(t, more)
}

func TestNoItemsPhraseOutsideParagraphIsIgnored(t *testing.T) {
	page := listPage(bookEntry(
		"該当の書籍は見つかりませんでした。という本",
		"/book/detail/9784798999999",
		"2023年1月1日",
		"9784798999999",
		"1,100円",
	))

	books, more, err := parsePage(t, page)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.True(t, more)
}

func TestParseMissingReleaseLabelIsFatal(t *testing.T) {
	page := listPage(`<div class="textWrapper">
<h3><a href="/book/detail/9784798172804">独習Go</a></h3>
<dl>
<dt>ISBN：</dt><dd class="isbn">9784798172804</dd>
<dt>定価：</dt><dd>3,300円</dd>
</dl>
</div>`)

	_, _, err := parsePage(t, page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `label "発売："`)
}

func TestParseUnparsableDateIsFatal(t *testing.T) {
	page := listPage(bookEntry(
		"独習Go", "/book/detail/9784798172804", "発売日未定", "9784798172804", "3,300円",
	))

	_, _, err := parsePage(t, page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse date")
}

func TestParseUnmatchedPriceIsRecoverable(t *testing.T) {
	page := listPage(bookEntry(
		"独習Go", "/book/detail/9784798172804", "2022年11月14日", "9784798172804", "お問い合わせください",
	))

	books, _, err := parsePage(t, page)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Empty(t, books[0].Price)
}

func TestSourcePageURL(t *testing.T) {
	src := New()
	assert.Equal(t, "shoeisha", src.Name())
	assert.Equal(t, 501, src.MaxPages())
	assert.Equal(t, "https://www.shoeisha.co.jp/book/list?p=0", src.PageURL("", 0))
	assert.Equal(t, "https://www.shoeisha.co.jp/book/list?p=42", src.PageURL("", 42))
}
