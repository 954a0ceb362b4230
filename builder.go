package wikitable

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/markup"
)

// TableClass is the class attribute of built tables.
const TableClass = "wrapped"

var (
	// ErrNilRow is returned when a transformer encodes a value as nil.
	ErrNilRow = errors.New("wikitable: transformer returned a nil row")

	// ErrAttachedRow is returned when a transformer returns a node that
	// already belongs to a tree.
	ErrAttachedRow = errors.New("wikitable: transformer returned an attached row")
)

// Builder renders values of type T as a wiki table.
type Builder[T any] struct {
	transformer RowTransformer[T]
	options     Options
}

// NewBuilder returns a Builder that encodes values with t.
func NewBuilder[T any](t RowTransformer[T]) *Builder[T] {
	return &Builder[T]{
		transformer: t,
		options:     defaultOptions(),
	}
}

// Logger returns a copy of the builder that logs through l.
func (b *Builder[T]) Logger(l logrus.FieldLogger) *Builder[T] {
	return &Builder[T]{
		transformer: b.transformer,
		options:     b.options.withLogger(l),
	}
}

// Build renders values as a new document holding one table. See
// Builder.Build.
func Build[T any](values []T, t RowTransformer[T]) (*html.Node, error) {
	return NewBuilder(t).Build(values)
}

// Build renders values as a new document holding one table:
//
//	<table class="wrapped">
//	  <colgroup><col/>...</colgroup>
//	  <tbody>
//	    <tr><th>header</th>...</tr>
//	    one encoded row per value
//	  </tbody>
//	</table>
//
// An empty slice yields a nil document and no error. Errors are only
// returned for rows the transformer failed to produce.
func (b *Builder[T]) Build(values []T) (*html.Node, error) {
	if len(values) == 0 {
		return nil, nil
	}

	table, err := b.Table(values)
	if err != nil {
		return nil, err
	}
	return markup.NewDocument(table), nil
}

// Table renders values as a detached table element. Unlike Build it
// renders a header-only table for an empty slice.
func (b *Builder[T]) Table(values []T) (*html.Node, error) {
	headers := b.transformer.RequiredHeaders()

	table := markup.NewElement("table", "class", TableClass)

	colgroup := markup.NewElement("colgroup")
	for range headers {
		colgroup.AppendChild(markup.NewElement("col"))
	}
	table.AppendChild(colgroup)

	body := markup.NewElement("tbody")
	headerRow := markup.NewElement("tr")
	for _, h := range headers {
		th := markup.NewElement("th")
		th.AppendChild(markup.NewText(h))
		headerRow.AppendChild(th)
	}
	body.AppendChild(headerRow)
	table.AppendChild(body)

	for i, v := range values {
		row := b.transformer.EncodeRow(v)
		switch {
		case row == nil:
			return nil, fmt.Errorf("encoding row %d: %w", i+1, ErrNilRow)
		case row.Parent != nil || row.PrevSibling != nil || row.NextSibling != nil:
			return nil, fmt.Errorf("encoding row %d: %w", i+1, ErrAttachedRow)
		}
		body.AppendChild(row)
	}

	b.options.logger.WithFields(logrus.Fields{
		"headers": len(headers),
		"rows":    len(values),
	}).Debug("built table")
	return table, nil
}
