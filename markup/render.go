package markup

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// RenderXHTML writes n in XML form. Elements without children are written
// self-closed (<br/>, <time datetime="1984-08-13"/>), attributes keep their
// order and text is escaped. A document node renders its children only.
func RenderXHTML(w io.Writer, n *html.Node) error {
	bw := bufio.NewWriter(w)
	if err := renderXHTML(bw, n); err != nil {
		return err
	}
	return bw.Flush()
}

func renderXHTML(w *bufio.Writer, n *html.Node) error {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := renderXHTML(w, c); err != nil {
				return err
			}
		}
		return nil
	case html.TextNode:
		_, err := w.WriteString(html.EscapeString(n.Data))
		return err
	case html.CommentNode:
		_, err := w.WriteString("<!--" + n.Data + "-->")
		return err
	case html.DoctypeNode, html.RawNode:
		_, err := w.WriteString(n.Data)
		return err
	}

	w.WriteByte('<')
	w.WriteString(n.Data)
	for _, a := range n.Attr {
		w.WriteByte(' ')
		w.WriteString(attrName(a))
		w.WriteString(`="`)
		w.WriteString(html.EscapeString(a.Val))
		w.WriteByte('"')
	}
	if n.FirstChild == nil {
		_, err := w.WriteString("/>")
		return err
	}
	w.WriteByte('>')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := renderXHTML(w, c); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(n.Data)
	_, err := w.WriteString(">")
	return err
}

// RenderHTML writes n as HTML5.
func RenderHTML(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String returns the XHTML rendering of n.
func String(n *html.Node) string {
	var sb strings.Builder
	if err := RenderXHTML(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
