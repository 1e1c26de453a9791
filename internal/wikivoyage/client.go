// Package wikivoyage fetches raw article markup from the Wikivoyage
// MediaWiki API.
package wikivoyage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no article exists for the destination.
var ErrNotFound = errors.New("article not found")

// HTTPClient is the transport used for API requests, injectable for tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client requests article wikitext from a MediaWiki API endpoint.
type Client struct {
	client    HTTPClient
	urlTmpl   string
	userAgent string
}

// NewClient creates a client for the given API endpoint template. The
// template contains a {language} placeholder, e.g.
// "https://{language}.wikivoyage.org/w/api.php".
func NewClient(urlTmpl, userAgent string) *Client {
	return &Client{
		client:    &http.Client{Timeout: 15 * time.Second},
		urlTmpl:   urlTmpl,
		userAgent: userAgent,
	}
}

// NewClientWithHTTP creates a client with a custom transport.
func NewClientWithHTTP(client HTTPClient, urlTmpl, userAgent string) *Client {
	return &Client{client: client, urlTmpl: urlTmpl, userAgent: userAgent}
}

type apiResponse struct {
	Query struct {
		Pages map[string]struct {
			Missing   *string `json:"missing"`
			Revisions []struct {
				Content string `json:"*"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// Article returns the current wikitext of the article for the given
// destination title and language. ErrNotFound is returned when the wiki
// has no page for the title.
func (c *Client) Article(ctx context.Context, title, language string) (string, error) {
	endpoint := strings.ReplaceAll(c.urlTmpl, "{language}", language)

	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse API URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("action", "query")
	query.Set("format", "json")
	query.Set("titles", title)
	query.Set("prop", "revisions")
	query.Set("rvprop", "content")
	reqURL.RawQuery = query.Encode()

	log.Debug().Str("url", reqURL.String()).Msg("Fetching article")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiki API returned status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode API response: %w", err)
	}

	// The query result holds a single page keyed by page ID, or a
	// placeholder entry flagged missing.
	for _, page := range decoded.Query.Pages {
		if page.Missing != nil {
			return "", fmt.Errorf("%w: %q (%s)", ErrNotFound, title, language)
		}
		if len(page.Revisions) == 0 {
			return "", fmt.Errorf("%w: %q has no revisions", ErrNotFound, title)
		}
		return page.Revisions[0].Content, nil
	}

	return "", fmt.Errorf("%w: %q (%s)", ErrNotFound, title, language)
}
