// Package richtext renders the CMS's tree-structured rich-text documents to
// HTML. Malformed input renders as nothing; this package never returns an
// error to the page render path.
package richtext

import (
	"bytes"
	"encoding/json"
	"html"
	"html/template"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
)

// Text style bit flags.
const (
	FormatBold      = 1
	FormatItalic    = 2
	FormatUnderline = 4
)

// maxDepth bounds recursion; document nesting is author-controlled and is
// truncated softly beyond this.
const maxDepth = 32

// Document is a rich-text document: a tree hanging off a single root node.
type Document struct {
	Root *Node `json:"root"`
}

// Node is one node of the document tree.
type Node struct {
	Type     string      `json:"type"`
	Text     string      `json:"text"`
	Format   FormatFlags `json:"format"`
	Tag      string      `json:"tag"`
	ListType string      `json:"listType"`
	URL      string      `json:"url"`
	Children []*Node     `json:"children"`
}

// FormatFlags carries the text style bits. Element nodes reuse the same JSON
// key for alignment strings; those decode to zero instead of failing the
// whole document.
type FormatFlags int

func (f *FormatFlags) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FormatFlags(n)
		return nil
	}
	*f = 0
	return nil
}

// policy sanitizes the rendered fragment: only the elements this renderer
// emits survive, link URLs are restricted to standard schemes, and every
// external link gets rel/target attributes that do not leak referrer or
// opener context to the destination.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "br", "strong", "em", "u", "a")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// Render renders a raw rich-text document (as stored/transported) to HTML.
// Nil, empty, or malformed input yields an empty result.
func Render(raw json.RawMessage) template.HTML {
	if len(raw) == 0 {
		return ""
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return RenderDocument(&doc)
}

// RenderDocument renders a decoded document to HTML. A nil document or a
// document without a root renders as empty.
func RenderDocument(doc *Document) template.HTML {
	if doc == nil || doc.Root == nil {
		return ""
	}
	var buf bytes.Buffer
	renderChildren(&buf, doc.Root, 0)
	if buf.Len() == 0 {
		return ""
	}
	return template.HTML(policy.Sanitize(buf.String()))
}

func renderChildren(buf *bytes.Buffer, n *Node, depth int) {
	for _, child := range n.Children {
		renderNode(buf, child, depth+1)
	}
}

func renderNode(buf *bytes.Buffer, n *Node, depth int) {
	if n == nil || depth > maxDepth {
		return
	}

	switch n.Type {
	case "text":
		renderText(buf, n)

	case "paragraph":
		// An authored empty paragraph is intentional vertical spacing; keep
		// it visible as a line break instead of collapsing to nothing.
		if len(n.Children) == 0 {
			buf.WriteString("<p><br></p>")
			return
		}
		buf.WriteString("<p>")
		renderChildren(buf, n, depth)
		buf.WriteString("</p>")

	case "heading":
		tag := headingTag(n.Tag)
		buf.WriteString("<" + tag + ">")
		renderChildren(buf, n, depth)
		buf.WriteString("</" + tag + ">")

	case "list":
		tag := "ol"
		if n.ListType == "bullet" {
			tag = "ul"
		}
		buf.WriteString("<" + tag + ">")
		renderChildren(buf, n, depth)
		buf.WriteString("</" + tag + ">")

	case "listitem":
		buf.WriteString("<li>")
		renderChildren(buf, n, depth)
		buf.WriteString("</li>")

	case "quote":
		buf.WriteString("<blockquote>")
		renderChildren(buf, n, depth)
		buf.WriteString("</blockquote>")

	case "link":
		buf.WriteString(`<a href="` + html.EscapeString(n.URL) + `">`)
		renderChildren(buf, n, depth)
		buf.WriteString("</a>")

	case "linebreak":
		buf.WriteString("<br>")

	default:
		// Unknown node kinds render their children without a wrapping
		// element, so newer documents degrade instead of disappearing.
		renderChildren(buf, n, depth)
	}
}

// renderText writes a styled text run. Wrapping order is fixed: underline
// innermost, then italic, with bold as the outermost element.
func renderText(buf *bytes.Buffer, n *Node) {
	if n.Format&FormatBold != 0 {
		buf.WriteString("<strong>")
	}
	if n.Format&FormatItalic != 0 {
		buf.WriteString("<em>")
	}
	if n.Format&FormatUnderline != 0 {
		buf.WriteString("<u>")
	}

	// Empty text still renders (as nothing between the wraps) so run
	// boundaries survive.
	buf.WriteString(html.EscapeString(n.Text))

	if n.Format&FormatUnderline != 0 {
		buf.WriteString("</u>")
	}
	if n.Format&FormatItalic != 0 {
		buf.WriteString("</em>")
	}
	if n.Format&FormatBold != 0 {
		buf.WriteString("</strong>")
	}
}

func headingTag(tag string) string {
	if len(tag) == 2 && tag[0] == 'h' {
		if level, err := strconv.Atoi(tag[1:]); err == nil && level >= 1 && level <= 6 {
			return tag
		}
	}
	return "h2"
}
