package normalize

import (
	"fmt"
	"net/url"
)

// ResolveURL joins a possibly relative href against base and returns an
// absolute URL. An already absolute href passes through unchanged.
func ResolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	return b.ResolveReference(ref).String(), nil
}
