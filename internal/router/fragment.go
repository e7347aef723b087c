package router

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// Fragment is the usable part of a fetched page document.
type Fragment struct {
	Content string // inner HTML of the main content region
	Title   string // document title, empty if the document has none
}

// FetchFragment retrieves and parses one page document. A non-2xx status is
// an error; the caller decides how to surface it.
func FetchFragment(ctx context.Context, client *http.Client, url string) (Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Fragment{}, fmt.Errorf("creating fragment request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Fragment{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Fragment{}, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fragment{}, fmt.Errorf("reading %s: %w", url, err)
	}

	return parseFragment(body), nil
}

// parseFragment extracts the main content region and the title from a page
// document. A document without a main region is used whole.
func parseFragment(body []byte) Fragment {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return Fragment{Content: string(body)}
	}

	frag := Fragment{Title: findTitle(doc)}

	if main := findElement(doc, "main"); main != nil {
		frag.Content = innerHTML(main)
	} else {
		frag.Content = string(body)
	}
	return frag
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findTitle(doc *html.Node) string {
	title := findElement(doc, "title")
	if title == nil {
		return ""
	}
	var sb strings.Builder
	for c := title.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render errors only occur for malformed trees, which the parser
		// never produces.
		_ = html.Render(&sb, c)
	}
	return sb.String()
}
