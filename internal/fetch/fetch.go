// Package fetch provides the page-fetcher collaborator the scraping
// pipeline depends on.
package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	scraperrors "github.com/CASL0/scraping-tech-books/internal/errors"
	"github.com/CASL0/scraping-tech-books/internal/ratelimit"
)

// Timeout is the upper bound for a single page fetch. A page that takes
// longer counts as a failed fetch.
const Timeout = 30 * time.Second

// Fetcher retrieves the raw content of one listing page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client fetches pages over HTTP with an optional politeness limit.
type Client struct {
	http    *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a page fetcher. A requestsPerSecond of 0 disables
// rate limiting.
func NewClient(requestsPerSecond int) *Client {
	c := &Client{
		http: resty.New().SetTimeout(Timeout),
	}
	if requestsPerSecond > 0 {
		c.limiter = ratelimit.New("fetch", requestsPerSecond)
	}
	return c
}

// Fetch retrieves url and returns the page body. Unreachable hosts,
// timeouts and non-200 statuses all surface as a FetchError, which is
// fatal to the whole run.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", scraperrors.NewFetchError(url, err.Error())
	}
	if res.StatusCode() != http.StatusOK {
		return "", scraperrors.NewFetchStatusError(url, res.StatusCode())
	}
	return res.String(), nil
}
