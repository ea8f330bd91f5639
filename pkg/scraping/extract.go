package scraping

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Elements whose text never belongs in the extracted article body.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"button":   true,
	"select":   true,
	"template": true,
	"svg":      true,
}

// Block-level elements that end the current text run.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "blockquote": true, "pre": true, "br": true,
	"table": true, "ul": true, "ol": true,
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// Extraction is the text pulled from one HTML document. LinkText is the
// concatenated anchor text, kept separate so the quality scorer can compute
// link density.
type Extraction struct {
	Title    string
	Text     string
	LinkText string
}

// ExtractText walks the HTML tree and returns the readable text content,
// dropping navigation, chrome and embedded code. It is deliberately
// heuristic-light: sanitization runs before it and quality scoring after,
// so extraction only has to find the words.
func ExtractText(document string) Extraction {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		// html.Parse recovers from almost anything; a hard failure means
		// the input is not HTML at all. Treat it as plain text.
		return Extraction{Text: collapseText(document)}
	}

	var (
		text     strings.Builder
		linkText strings.Builder
		title    string
	)

	var walk func(n *html.Node, insideLink bool)
	walk = func(n *html.Node, insideLink bool) {
		switch n.Type {
		case html.ElementNode:
			name := strings.ToLower(n.Data)
			if skipElements[name] {
				return
			}
			if name == "title" && title == "" {
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
			if name == "a" {
				insideLink = true
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, insideLink)
			}
			if blockElements[name] {
				text.WriteString("\n")
			}
		case html.TextNode:
			chunk := n.Data
			if strings.TrimSpace(chunk) == "" {
				return
			}
			text.WriteString(chunk)
			text.WriteString(" ")
			if insideLink {
				linkText.WriteString(chunk)
				linkText.WriteString(" ")
			}
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, insideLink)
			}
		}
	}
	walk(root, false)

	return Extraction{
		Title:    title,
		Text:     collapseText(text.String()),
		LinkText: strings.TrimSpace(whitespaceRun.ReplaceAllString(linkText.String(), " ")),
	}
}

// collapseText normalizes whitespace while preserving paragraph breaks:
// runs of spaces collapse to one, runs of 3+ newlines collapse to a blank
// line.
func collapseText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
