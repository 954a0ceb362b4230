package records

import (
	"time"

	"golang.org/x/net/html"

	"github.com/tsawler/wikitable"
	"github.com/tsawler/wikitable/scalar"
)

// Record is one table row keyed by column name.
type Record map[string]any

// Transformer converts between table rows and records of a Schema.
type Transformer struct {
	schema Schema
}

var _ wikitable.RowTransformer[Record] = (*Transformer)(nil)

// NewTransformer returns a Transformer for s.
func NewTransformer(s Schema) *Transformer {
	return &Transformer{schema: s}
}

// Schema returns the transformer's schema.
func (t *Transformer) Schema() Schema {
	return t.schema
}

// RequiredHeaders returns the schema's column names.
func (t *Transformer) RequiredHeaders() []string {
	return t.schema.Headers()
}

// DecodeRow decodes the schema's columns from row. Rows whose cells are
// all blank are rejected.
func (t *Transformer) DecodeRow(row wikitable.Row) (Record, bool) {
	r := make(Record, len(t.schema.Columns))
	blank := true
	for _, c := range t.schema.Columns {
		text := scalar.TrimSpace(row.Text(c.Name))
		if text != "" {
			blank = false
		}

		switch c.Kind() {
		case Date:
			if d, ok := scalar.ParseDate(t.schema.DateLayout, text); ok {
				r[c.Name] = d
			} else {
				r[c.Name] = nil
			}
		case Int:
			r[c.Name] = scalar.ParseInt64(text)
		case Float:
			r[c.Name] = scalar.ParseFloat64(text)
		default:
			r[c.Name] = text
		}
	}
	if blank {
		return nil, false
	}
	return r, true
}

// EncodeRow encodes r as a row. Date values render as time elements and
// missing values as empty columns.
func (t *Transformer) EncodeRow(r Record) *html.Node {
	cells := make([]*html.Node, len(t.schema.Columns))
	for i, c := range t.schema.Columns {
		switch v := t.schema.coerce(c, r[c.Name]).(type) {
		case nil:
			cells[i] = wikitable.EmptyColumn()
		case time.Time:
			cells[i] = wikitable.DateColumn(v)
		default:
			cells[i] = wikitable.TextColumn(FormatValue(v))
		}
	}
	return wikitable.NewRow(cells...)
}
