package scrape

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/ychekhovska/jphstats/internal/normalize"
)

// Link is one resolved anchor from a listing page.
type Link struct {
	URL  string
	Text string
}

// Links extracts every anchor from an HTML page, resolved against base.
// Fragment-only and non-HTTP links are dropped.
func Links(body []byte, base *url.URL) ([]Link, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if href == "" || strings.HasPrefix(href, "#") {
					break
				}
				ref, err := url.Parse(href)
				if err != nil {
					break
				}
				resolved := base.ResolveReference(ref)
				if resolved.Scheme != "http" && resolved.Scheme != "https" {
					break
				}
				links = append(links, Link{
					URL:  resolved.String(),
					Text: strings.TrimSpace(nodeText(n)),
				})
				break
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// yearSegment matches publication folder names like R06, H27 or
// R6jisatsunojoukyou.
var yearSegment = regexp.MustCompile(`^[RH]\d{1,2}`)

// YearPages filters links pointing at per-year publication pages: the
// last path segment carries an era prefix, or the anchor text is an era
// year label.
func YearPages(links []Link) []Link {
	var out []Link
	seen := make(map[string]bool)
	for _, l := range links {
		if seen[l.URL] {
			continue
		}
		if !isYearPage(l) {
			continue
		}
		seen[l.URL] = true
		out = append(out, l)
	}
	return out
}

func isYearPage(l Link) bool {
	u, err := url.Parse(l.URL)
	if err != nil {
		return false
	}
	seg := path.Base(strings.TrimSuffix(u.Path, "/"))
	seg = strings.TrimSuffix(seg, path.Ext(seg))
	if yearSegment.MatchString(seg) {
		return true
	}
	// Anchor text like 令和6年中における自殺の状況.
	text := normalize.FoldWidth(l.Text)
	if idx := strings.Index(text, "年"); idx > 0 {
		if _, ok := normalize.Year(text[:idx] + "年"); ok {
			return true
		}
	}
	return false
}

// dataExtensions are the downloadable publication formats.
var dataExtensions = map[string]bool{
	".pdf":  true,
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// DataFiles filters links pointing at downloadable data files.
func DataFiles(links []Link) []Link {
	var out []Link
	seen := make(map[string]bool)
	for _, l := range links {
		u, err := url.Parse(l.URL)
		if err != nil {
			continue
		}
		if !dataExtensions[strings.ToLower(path.Ext(u.Path))] {
			continue
		}
		if seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		out = append(out, l)
	}
	return out
}
