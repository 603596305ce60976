// Package feed turns RSS and Atom documents into articles ready to be stored.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedreader/pkg/domain"
)

// Importer parses RSS/Atom documents into sanitized articles
type Importer struct {
	client    *http.Client
	userAgent string
	maxItems  int
	maxBytes  int64
	body      *bluemonday.Policy // allowed markup in article body
	strict    *bluemonday.Policy // plain text, for titles and blank checks
}

// Result is the outcome of one import. Skipped counts entries without usable title or body
// and entries over the item limit.
type Result struct {
	Articles []domain.Article
	Skipped  int
}

// NewImporter creates a new importer. Remote documents are fetched with the given timeout and user agent
// and may not exceed maxBytes, at most maxItems entries are taken from one document.
func NewImporter(timeout time.Duration, userAgent string, maxItems int, maxBytes int64) *Importer {
	return &Importer{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		maxItems:  maxItems,
		maxBytes:  maxBytes,
		body:      bluemonday.UGCPolicy(),
		strict:    bluemonday.StrictPolicy(),
	}
}

// Parse reads a document from r
func (im *Importer) Parse(r io.Reader) (Result, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return Result{}, &domain.AppError{Code: http.StatusBadRequest, Message: "error parsing feed document",
			Fix: "Request body must be a valid RSS or Atom document", Err: err}
	}
	return im.convert(parsed), nil
}

// Fetch downloads the document at url and parses it. Documents over the size limit are rejected.
func (im *Importer) Fetch(ctx context.Context, url string) (Result, error) {
	body, err := im.fetch(ctx, url)
	if err != nil {
		log.Printf("[WARN] can't fetch feed document %s: %v", url, err)
		return Result{}, fetchError(err)
	}
	defer body.Close()

	// one byte over the limit is enough to detect an oversize document
	data, err := io.ReadAll(io.LimitReader(body, im.maxBytes+1))
	if err != nil {
		log.Printf("[WARN] can't read feed document %s: %v", url, err)
		return Result{}, fetchError(err)
	}
	if int64(len(data)) > im.maxBytes {
		log.Printf("[WARN] feed document %s exceeds %d bytes", url, im.maxBytes)
		return Result{}, &domain.AppError{Code: http.StatusRequestEntityTooLarge, Message: "feed document is too large",
			Fix: fmt.Sprintf("Feed document must not exceed %d bytes", im.maxBytes)}
	}
	return im.Parse(bytes.NewReader(data))
}

func fetchError(err error) *domain.AppError {
	return &domain.AppError{Code: http.StatusBadGateway, Message: "error fetching feed document",
		Fix: "url must point to a reachable RSS or Atom document", Err: err}
}

// convert maps entries to articles, dropping blank ones
func (im *Importer) convert(parsed *gofeed.Feed) Result {
	res := Result{Articles: make([]domain.Article, 0, min(len(parsed.Items), im.maxItems))}
	for i, item := range parsed.Items {
		if i >= im.maxItems {
			res.Skipped += len(parsed.Items) - i
			break
		}

		title := im.plainText(item.Title)
		content := item.Content
		if strings.TrimSpace(content) == "" {
			content = item.Description
		}
		body := strings.TrimSpace(im.body.Sanitize(content))

		if title == "" || im.plainText(body) == "" {
			log.Printf("[DEBUG] skip entry %d of %q, blank title or body", i, parsed.Title)
			res.Skipped++
			continue
		}
		res.Articles = append(res.Articles, domain.NewArticle(title, body))
	}
	log.Printf("[DEBUG] parsed %q, %d article(s), %d skipped", parsed.Title, len(res.Articles), res.Skipped)
	return res
}

// plainText strips all markup and entities
func (im *Importer) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(im.strict.Sanitize(s)))
}

// fetch retrieves content from a URL
func (im *Importer) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addFeedHeaders(req, im.userAgent)

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
