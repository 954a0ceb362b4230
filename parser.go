package wikitable

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/markup"
	"github.com/tsawler/wikitable/scalar"
)

// Parser extracts values of type T from every table of a document.
// A Parser only reads the documents it is given.
type Parser[T any] struct {
	transformer RowTransformer[T]
	options     Options
}

// NewParser returns a Parser that decodes rows with t.
//
// Example:
//
//	people := wikitable.NewParser[Person](personTransformer{}).
//	    Logger(log).
//	    Parse(doc)
func NewParser[T any](t RowTransformer[T]) *Parser[T] {
	return &Parser[T]{
		transformer: t,
		options:     defaultOptions(),
	}
}

// Logger returns a copy of the parser that logs through l.
func (p *Parser[T]) Logger(l logrus.FieldLogger) *Parser[T] {
	return &Parser[T]{
		transformer: p.transformer,
		options:     p.options.withLogger(l),
	}
}

// Parse decodes the data rows of every table in doc, nested tables
// included, and returns the values in document order. Tables without the
// required headers and rows that are malformed or rejected are logged and
// left out; the result is never nil.
func Parse[T any](doc *html.Node, t RowTransformer[T]) []T {
	return NewParser(t).Parse(doc)
}

// Parse decodes the data rows of every table in doc. See the package
// function Parse.
func (p *Parser[T]) Parse(doc *html.Node) []T {
	result := make([]T, 0)
	for i, table := range markup.FindAll(doc, "table") {
		log := p.options.logger.WithField("table", i)
		result = append(result, p.parseTable(table, log)...)
	}
	return result
}

// ParseTable decodes the data rows of a single table element.
func (p *Parser[T]) ParseTable(table *html.Node) []T {
	return p.parseTable(table, p.options.logger)
}

func (p *Parser[T]) parseTable(table *html.Node, log logrus.FieldLogger) []T {
	headers := Headers(table)
	if missing := missingHeaders(headers, p.transformer.RequiredHeaders()); len(missing) > 0 {
		log.WithFields(logrus.Fields{
			"headers": headers,
			"missing": missing,
		}).Error("table does not contain all mandatory headers")
		return nil
	}

	var result []T
	for i, tr := range dataRows(table) {
		row, ok := newRow(headers, markup.ElementChildren(tr))
		if !ok {
			log.WithFields(logrus.Fields{
				"row":     i + 1,
				"cells":   len(markup.ElementChildren(tr)),
				"headers": len(headers),
				"text":    markup.TextContent(tr),
			}).Error("number of columns does not match number of headers")
			continue
		}

		v, ok := p.transformer.DecodeRow(row)
		if !ok {
			log.WithFields(logrus.Fields{
				"row":  i + 1,
				"text": markup.TextContent(tr),
			}).Error("row does not represent a valid object")
			continue
		}
		result = append(result, v)
	}

	log.WithField("rows", len(result)).Debug("parsed table")
	return result
}

// missingHeaders returns the required headers absent from headers, both
// compared in normalized form.
func missingHeaders(headers, required []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[scalar.Normalize(h)] = true
	}

	var missing []string
	for _, h := range required {
		if !present[scalar.Normalize(h)] {
			missing = append(missing, h)
		}
	}
	return missing
}

// Headers returns the raw header texts of table in column order. The header
// row is the table's first element child if that is a tr, or else the first
// element child of a trailing tbody if that is a tr. Any other shape yields
// no headers.
func Headers(table *html.Node) []string {
	headerRow := headerRow(table)
	if headerRow == nil {
		return nil
	}

	cells := markup.ElementChildren(headerRow)
	headers := make([]string, len(cells))
	for i, cell := range cells {
		headers[i] = markup.TextContent(cell)
	}
	return headers
}

func headerRow(table *html.Node) *html.Node {
	if first := markup.FirstElementChild(table); markup.IsElement(first, "tr") {
		return first
	}
	if last := markup.LastElementChild(table); markup.IsElement(last, "tbody") {
		if first := markup.FirstElementChild(last); markup.IsElement(first, "tr") {
			return first
		}
	}
	return nil
}

// dataRows returns the rows after the header row: the children of a
// trailing tbody, or else the table's own children, minus the first.
func dataRows(table *html.Node) []*html.Node {
	group := table
	if last := markup.LastElementChild(table); markup.IsElement(last, "tbody") {
		group = last
	}
	rows := markup.ElementChildren(group)
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// TableHeaders returns the headers of the only table in doc. If doc holds
// no table or more than one, it logs an error and returns no headers.
func TableHeaders(doc *html.Node) []string {
	return tableHeaders(doc, logrus.StandardLogger())
}

// TableHeaders returns the headers of the only table in doc, logging
// through the parser's logger. See the package function TableHeaders.
func (p *Parser[T]) TableHeaders(doc *html.Node) []string {
	return tableHeaders(doc, p.options.logger)
}

func tableHeaders(doc *html.Node, log logrus.FieldLogger) []string {
	tables := markup.FindAll(doc, "table")
	if len(tables) != 1 {
		log.WithField("tables", len(tables)).Error("document does not have exactly one table")
		return nil
	}
	return Headers(tables[0])
}
