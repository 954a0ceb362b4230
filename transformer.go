package wikitable

import (
	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/scalar"
)

// RowTransformer converts between one table row and one value of type T.
// Implementations should be stateless; they are called once per row or
// value.
type RowTransformer[T any] interface {
	// RequiredHeaders returns the table headers in column order. Parsing
	// requires each of them to be present (compared after trimming and
	// lower-casing); building writes them as the header row.
	RequiredHeaders() []string

	// DecodeRow decodes one data row. Returning false skips the row.
	DecodeRow(row Row) (T, bool)

	// EncodeRow encodes v as a detached tr element, usually built with
	// NewRow and the column constructors.
	EncodeRow(v T) *html.Node
}

// Row pairs the headers of a table with the cells of one data row by
// position.
type Row struct {
	headers []string
	cells   []*html.Node
}

// newRow pairs headers with cells. It returns false if the counts differ.
func newRow(headers []string, cells []*html.Node) (Row, bool) {
	if len(headers) != len(cells) {
		return Row{}, false
	}
	return Row{headers: headers, cells: cells}, true
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.cells)
}

// Headers returns the raw headers in column order.
func (r Row) Headers() []string {
	return append([]string(nil), r.headers...)
}

// At returns the header and cell of column i.
func (r Row) At(i int) (string, *html.Node) {
	return r.headers[i], r.cells[i]
}

// Cell returns the cell under header, or nil. An exact match on the raw
// header wins; otherwise headers are compared in normalized form, so
// "name" finds the cell under " Name ". When a header repeats, the last
// column wins.
func (r Row) Cell(header string) *html.Node {
	for i := len(r.headers) - 1; i >= 0; i-- {
		if r.headers[i] == header {
			return r.cells[i]
		}
	}
	want := scalar.Normalize(header)
	for i := len(r.headers) - 1; i >= 0; i-- {
		if scalar.Normalize(r.headers[i]) == want {
			return r.cells[i]
		}
	}
	return nil
}

// Has reports whether the row has a column for header.
func (r Row) Has(header string) bool {
	return r.Cell(header) != nil
}

// Text returns the text of the cell under header with embedded time
// elements replaced by their datetime value. A missing column yields "".
func (r Row) Text(header string) string {
	return scalar.TextAndTime(r.Cell(header))
}
