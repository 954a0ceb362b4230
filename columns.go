package wikitable

import (
	"time"

	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/markup"
	"github.com/tsawler/wikitable/scalar"
)

// ContentWrapperClass is the class of the div that hosts rich cell content.
const ContentWrapperClass = "content-wrapper"

// NewRow returns a tr element holding cells.
func NewRow(cells ...*html.Node) *html.Node {
	tr := markup.NewElement("tr")
	for _, c := range cells {
		tr.AppendChild(c)
	}
	return tr
}

// Column returns a td element holding children.
func Column(children ...*html.Node) *html.Node {
	td := markup.NewElement("td")
	for _, c := range children {
		td.AppendChild(c)
	}
	return td
}

// EmptyColumn returns a td holding a single br. Wiki tables never contain
// an empty td.
func EmptyColumn() *html.Node {
	return Column(markup.NewElement("br"))
}

// TextColumn returns a td holding text, or an EmptyColumn if text is empty.
func TextColumn(text string) *html.Node {
	if text == "" {
		return EmptyColumn()
	}
	return Column(markup.NewText(text))
}

// ContentWrapper returns <div class="content-wrapper"><p>children</p></div>.
func ContentWrapper(children ...*html.Node) *html.Node {
	p := markup.NewElement("p")
	for _, c := range children {
		p.AppendChild(c)
	}
	div := markup.NewElement("div", "class", ContentWrapperClass)
	div.AppendChild(p)
	return div
}

// DateNode returns <time datetime="YYYY-MM-DD"/> for t.
func DateNode(t time.Time) *html.Node {
	return markup.NewElement("time", "datetime", scalar.FormatDate(t))
}

// DateColumn returns a td holding t wrapped in a content wrapper, or an
// EmptyColumn for the zero time.
func DateColumn(t time.Time) *html.Node {
	if t.IsZero() {
		return EmptyColumn()
	}
	return Column(ContentWrapper(DateNode(t)))
}
