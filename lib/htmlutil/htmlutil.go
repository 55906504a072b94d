package htmlutil

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("apptendo.lib.htmlutil")

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	// footnote markers like [12] are rendered inside <sup>
	if node.Type == html.ElementNode && node.Data == "sup" {
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText folds every kind of whitespace (including &nbsp;) into plain
// spaces, drops other non-printable runes, trims and collapses runs of
// spaces.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	s = strings.Trim(s, " ")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// SelectionText is the cleaned text of every node in the selection.
func SelectionText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return CleanText(buffer.String())
}

type Anchor struct {
	Name string
	Href string
}

// FirstAnchor returns the first <a> found under sel, ok is false when
// there is none.
func FirstAnchor(ctx context.Context, sel *goquery.Selection) (Anchor, bool) {
	_, span := tracer.Start(ctx, "FirstAnchor")
	defer span.End()

	a := sel.Find("a").First()
	if a.Length() == 0 {
		span.AddEvent("no anchor")
		return Anchor{}, false
	}

	href := a.AttrOr("href", "")
	if link, err := url.Parse(href); err == nil {
		href = link.String()
	} else {
		span.RecordError(err)
	}

	anchor := Anchor{
		Name: SelectionText(a),
		Href: href,
	}
	span.AddEvent("anchor", trace.WithAttributes(
		attribute.String("name", anchor.Name),
		attribute.String("url", anchor.Href),
	))
	return anchor, true
}
