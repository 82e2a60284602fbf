// Package export renders trees to static HTML and publishes the
// result, for prerendering and snapshot pipelines.
package export

import (
	"strings"

	"github.com/alder-ui/alder/pkg/vdom"
)

// voidTags are elements serialized without a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Markup serializes a tree to HTML. Event handlers have no static
// representation and are skipped; a live session re-establishes them.
func Markup[Msg any](h *vdom.Html[Msg]) string {
	var b strings.Builder
	writeNode(&b, h)
	return b.String()
}

func writeNode[Msg any](b *strings.Builder, h *vdom.Html[Msg]) {
	if h == nil {
		return
	}
	if h.Kind == vdom.KindText {
		b.WriteString(escapeText(h.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(h.Tag)
	for _, attr := range h.Attrs {
		switch attr.Kind {
		case vdom.AttrID:
			writeAttr(b, "id", attr.Value)
		case vdom.AttrClassList:
			if len(attr.Classes) > 0 {
				writeAttr(b, "class", strings.Join(attr.Classes, " "))
			}
		}
	}
	b.WriteByte('>')

	if voidTags[h.Tag] {
		return
	}
	for _, child := range h.Children {
		writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(h.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(escapeAttr(value))
	b.WriteByte('"')
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// Page wraps body markup in a minimal document shell.
func Page(title, body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(escapeText(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
