package export

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CASL0/scraping-tech-books/internal/book"
	scraperrors "github.com/CASL0/scraping-tech-books/internal/errors"
)

func threeBooks() []book.Book {
	books := sampleBooks()
	books = append(books, book.Book{
		Title:       "改訂新版 みんなのGo言語",
		ISBN:        "978-4-297-13719-9",
		Price:       "￥2,618",
		URL:         "https://gihyo.jp/book/2023/978-4-297-13719-9",
		PublishedAt: time.Date(2023, 8, 10, 0, 0, 0, 0, book.JST),
		Publisher:   book.PublisherGihyo,
	})
	return books
}

// postRecorder captures every submission body and answers with the
// status configured for that submission's position.
type postRecorder struct {
	statuses []int
	bodies   [][]byte
}

func (p *postRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		p.bodies = append(p.bodies, body)
		w.WriteHeader(p.statuses[len(p.bodies)-1])
	}
}

func TestPostBooksSubmitsInOrder(t *testing.T) {
	recorder := &postRecorder{statuses: []int{201, 201, 201}}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	require.NoError(t, PostBooks(context.Background(), server.URL, threeBooks()))
	require.Len(t, recorder.bodies, 3)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.bodies[0], &payload))
	assert.Equal(t, "実践Rustプログラミング入門", payload["title"])
	assert.Equal(t, "9784798061702", payload["isbn"])
	assert.Equal(t, "￥3,960", payload["price"])
	assert.Equal(t, "https://www.shoeisha.co.jp/book/detail/9784798061702", payload["url"])
	assert.Equal(t, book.PublisherShoeisha, payload["publisher"])
	assert.Equal(t, "2020-08-22T00:00:00+09:00", payload["publishedAt"])

	require.NoError(t, json.Unmarshal(recorder.bodies[1], &payload))
	assert.Contains(t, payload, "price")
	assert.Nil(t, payload["price"], "absent price posts as null")
}

func TestPostBooksConflictIsRecoverable(t *testing.T) {
	recorder := &postRecorder{statuses: []int{201, 409, 201}}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	require.NoError(t, PostBooks(context.Background(), server.URL, threeBooks()))
	assert.Len(t, recorder.bodies, 3, "a conflict must not stop the remaining submissions")
}

func TestPostBooksServerErrorAborts(t *testing.T) {
	recorder := &postRecorder{statuses: []int{201, 500, 201}}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	err := PostBooks(context.Background(), server.URL, threeBooks())
	require.Error(t, err)
	assert.True(t, scraperrors.IsPostError(err))

	var postErr *scraperrors.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, 500, postErr.StatusCode)
	assert.Len(t, recorder.bodies, 2, "the third book must not be submitted")
}

func TestPostBooksUnreachableEndpointIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	err := PostBooks(context.Background(), url, threeBooks())
	require.Error(t, err)
}
