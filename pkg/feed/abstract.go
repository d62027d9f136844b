package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// strips all markup, keeps text content only
var stripPolicy = bluemonday.StrictPolicy()

// ExtractAbstract returns the plain-text abstract of a feed entry using
// the journal's declared selector: "description" strips HTML tags from the
// description field, "content" takes the first content block verbatim,
// anything else falls back to the summary field as-is. Newlines are
// collapsed to single spaces so the text is safe to embed in one message
// line. A missing field yields an empty string.
func ExtractAbstract(item *gofeed.Item, tag string) string {
	var txt string
	switch tag {
	case "description":
		txt = html.UnescapeString(stripPolicy.Sanitize(item.Description))
	case "content":
		txt = item.Content
	default: // "summary"
		txt = item.Description
	}
	return collapseLines(txt)
}

// collapseLines replaces line breaks with single spaces
func collapseLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
