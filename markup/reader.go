package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/format"
)

// ErrUnsupported is returned when a file format cannot be loaded as markup.
var ErrUnsupported = errors.New("markup: unsupported format")

// Open reads a markup file, choosing the loader from the file extension and,
// failing that, from the content.
func Open(filename string) (*html.Node, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	f := format.Detect(filename)
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}
	return Load(bytes.NewReader(data), f)
}

// Load parses r with the loader for f.
func Load(r io.Reader, f format.Format) (*html.Node, error) {
	switch f {
	case format.XML:
		return ParseXML(r)
	case format.HTML:
		return ParseHTML(r)
	case format.Markdown:
		return ParseMarkdown(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f)
	}
}

// ParseHTML parses r as HTML5. The parser is lenient and inserts implied
// elements, so a table written without tbody gets one.
func ParseHTML(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ParseXML parses r as XML markup such as Confluence storage format or
// XHTML. The tree keeps the structure exactly as written. HTML entities
// like &nbsp; are accepted, unclosed void elements are closed, and
// prefixed names without a namespace declaration keep their prefix
// (ac:structured-macro). Multiple top-level elements are allowed.
func ParseXML(r io.Reader) (*html.Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	doc := NewDocument()
	current := doc
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := NewElement(qualifiedName(t.Name))
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, html.Attribute{Key: qualifiedName(a.Name), Val: a.Value})
			}
			current.AppendChild(n)
			current = n
		case xml.EndElement:
			if current.Parent != nil {
				current = current.Parent
			}
		case xml.CharData:
			if last := current.LastChild; last != nil && last.Type == html.TextNode {
				last.Data += string(t)
				continue
			}
			current.AppendChild(NewText(string(t)))
		case xml.Comment:
			current.AppendChild(&html.Node{Type: html.CommentNode, Data: string(t)})
		}
	}
	return doc, nil
}

// qualifiedName keeps unresolved prefixes and drops resolved namespace URLs.
func qualifiedName(name xml.Name) string {
	if name.Space == "" || strings.ContainsAny(name.Space, "/:") {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// ParseMarkdown renders Markdown to HTML and parses the result. Pipe
// tables come out with a thead section; its rows are moved to the front of
// the tbody so the header row is the body group's first row.
func ParseMarkdown(r io.Reader) (*html.Node, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	out := markdown.ToHTML(content, p, renderer)

	doc, err := ParseHTML(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}
	for _, table := range FindAll(doc, "table") {
		foldHead(table)
	}
	return doc, nil
}

func foldHead(table *html.Node) {
	var thead, tbody *html.Node
	for _, c := range ElementChildren(table) {
		switch c.Data {
		case "thead":
			if thead == nil {
				thead = c
			}
		case "tbody":
			if tbody == nil {
				tbody = c
			}
		}
	}
	if thead == nil {
		return
	}
	if tbody == nil {
		tbody = NewElement("tbody")
		table.InsertBefore(tbody, thead.NextSibling)
	}

	ref := tbody.FirstChild
	for _, tr := range ElementChildren(thead) {
		thead.RemoveChild(tr)
		tbody.InsertBefore(tr, ref)
	}
	table.RemoveChild(thead)
}
