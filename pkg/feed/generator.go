package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/feedreader/pkg/domain"
)

// Generator creates RSS documents from stored articles
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator, baseURL is used for channel links
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 document from articles. selfPath is the request path of the document.
func (g *Generator) GenerateRSS(articles []domain.Article, title, selfPath string) (string, error) {
	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%s, %d article(s)", title, len(articles)),
			AtomLink:      &AtomLink{Href: g.baseURL + selfPath, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	// add XML declaration
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an article to an RSS item, the feed name becomes the item category
func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	item := &RSSItem{
		Title:       a.Title,
		Description: a.Body,
	}
	if a.ID != nil {
		item.GUID = RSSGUID{Value: fmt.Sprintf("%s/articles/%d", g.baseURL, *a.ID)}
	}
	if a.CreatedOn != nil {
		item.PubDate = a.CreatedOn.Format(time.RFC1123Z)
	}
	if a.Feed != "" {
		item.Categories = []string{a.Feed}
	}
	return item
}
