package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementChildren returns the element children of n in document order.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	children := make([]*html.Node, 0)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// FirstElementChild returns the first element child of n, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// LastElementChild returns the last element child of n, or nil.
func LastElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// Find returns the first element with the given tag name in a preorder
// walk starting at n (n itself included), or nil.
func Find(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if IsElement(n, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := Find(c, tag); result != nil {
			return result
		}
	}
	return nil
}

// FindAll returns every element with the given tag name below n, in
// document order. Nested matches are included.
func FindAll(n *html.Node, tag string) []*html.Node {
	found := make([]*html.Node, 0)
	findAll(n, tag, &found)
	return found
}

func findAll(n *html.Node, tag string, found *[]*html.Node) {
	if n == nil {
		return
	}
	if IsElement(n, tag) {
		*found = append(*found, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findAll(c, tag, found)
	}
}

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if attrName(a) == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute key on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if attrName(a) == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

// TextContent returns the concatenated text of every text node below n,
// untrimmed, like the DOM textContent property.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	textContent(n, &sb)
	return sb.String()
}

func textContent(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
}

// NewDocument returns a document node holding the given children.
func NewDocument(children ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	for _, c := range children {
		doc.AppendChild(c)
	}
	return doc
}

// NewElement returns a detached element. Attributes are given as
// key/value pairs; a trailing key without a value is ignored.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		SetAttr(n, attrs[i], attrs[i+1])
	}
	return n
}

// NewText returns a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
