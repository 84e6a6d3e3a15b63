package menu

import (
	"html"
	"strings"
)

// Builder produces the markup for a rendered menu.
type Builder interface {
	// Element wraps inner, which is already markup, in a tag with attrs.
	Element(tag, inner string, attrs Attributes) string

	// Link returns an anchor pointing to url labeled with title.
	Link(url, title string, attrs Attributes) string
}

// HTMLBuilder renders plain HTML. Attributes are written in key order and
// escaped, titles are escaped, inner content is written as is.
type HTMLBuilder struct {
	// Base is joined with every href using a single slash, e.g. "/" to make
	// menu URLs site absolute.
	Base string
}

// Element implements Builder.
func (b HTMLBuilder) Element(tag, inner string, attrs Attributes) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	writeAttributes(&sb, attrs)
	sb.WriteByte('>')
	sb.WriteString(inner)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
	return sb.String()
}

// Link implements Builder. An href in attrs is ignored.
func (b HTMLBuilder) Link(url, title string, attrs Attributes) string {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(html.EscapeString(b.href(url)))
	sb.WriteByte('"')

	rest := attrs.Clone()
	delete(rest, "href")
	writeAttributes(&sb, rest)

	sb.WriteByte('>')
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</a>")
	return sb.String()
}

func (b HTMLBuilder) href(url string) string {
	if b.Base == "" {
		return url
	}
	return strings.TrimRight(b.Base, "/") + "/" + strings.TrimLeft(url, "/")
}

func writeAttributes(sb *strings.Builder, attrs Attributes) {
	for _, k := range attrs.Keys() {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attrs[k]))
		sb.WriteByte('"')
	}
}
