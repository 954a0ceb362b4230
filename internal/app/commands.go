package app

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/tsawler/wikitable"
	"github.com/tsawler/wikitable/format"
	"github.com/tsawler/wikitable/markup"
	"github.com/tsawler/wikitable/records"
)

// Parse reads a wiki page and writes the rows of its tables as records.
func (c *Command) Parse(args []string) error {
	fs := c.flagSet("parse")
	in := fs.String("in", "-", "markup file, or - for stdin")
	from := fs.String("from", "", "input format: xml, html or markdown (default from -in, else xml)")
	out := fs.String("out", "-", "output file, or - for stdout")
	to := fs.String("to", "", "output format: yaml, json, csv, markdown or xlsx (default from -out, else yaml)")
	where := fs.String("where", "", "keep only records for which this expression is true")
	sheet := fs.String("sheet", c.cfg.XLSX.Sheet, "worksheet name for xlsx output")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	outFormat, err := chooseFormat(*to, *out, format.YAML)
	if err != nil {
		return err
	}
	if !isRecordFormat(outFormat) {
		return fmt.Errorf("%w: cannot write records as %s", ErrUnknownFormat, outFormat)
	}

	doc, err := c.readMarkup(*in, *from)
	if err != nil {
		return err
	}
	schema, err := c.markupSchema(doc)
	if err != nil {
		return err
	}

	p := wikitable.NewParser[records.Record](records.NewTransformer(schema)).Logger(c.log)
	recs := p.Parse(doc)
	if *where != "" {
		if recs, err = records.Filter(recs, *where, c.log); err != nil {
			return err
		}
	}
	c.log.WithField("records", len(recs)).Info("parsed document")

	return c.writeOutput(*out, func(w io.Writer) error {
		return writeRecords(w, outFormat, schema, recs, *sheet)
	})
}

// Build reads records and writes them as a wiki table. Nothing is written
// when there are no records.
func (c *Command) Build(args []string) error {
	fs := c.flagSet("build")
	in := fs.String("in", "-", "records file, or - for stdin")
	from := fs.String("from", "", "input format: yaml, json, csv or xlsx (default from -in, else yaml)")
	out := fs.String("out", "-", "output file, or - for stdout")
	asHTML := fs.Bool("html", false, "write HTML5 instead of XHTML storage format")
	sheet := fs.String("sheet", c.cfg.XLSX.Sheet, "worksheet name for xlsx input")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	inFormat, err := chooseFormat(*from, *in, format.YAML)
	if err != nil {
		return err
	}
	recs, err := c.readRecords(*in, inFormat, *sheet)
	if err != nil {
		return err
	}

	schema := c.cfg.Table
	if len(schema.Columns) == 0 {
		schema = records.SchemaFromRecords(recs)
		schema.DateLayout = c.cfg.Table.DateLayout
	}
	for i, r := range recs {
		recs[i] = schema.Coerce(r)
	}

	b := wikitable.NewBuilder[records.Record](records.NewTransformer(schema)).Logger(c.log)
	doc, err := b.Build(recs)
	if err != nil {
		return err
	}
	if doc == nil {
		c.log.Info("no records, nothing to build")
		return nil
	}

	if *asHTML || format.Detect(*out) == format.HTML {
		return c.writeOutput(*out, func(w io.Writer) error { return markup.RenderHTML(w, doc) })
	}
	return c.writeOutput(*out, func(w io.Writer) error { return markup.RenderXHTML(w, doc) })
}

// Headers prints the headers of the document's only table, one per line.
func (c *Command) Headers(args []string) error {
	fs := c.flagSet("headers")
	in := fs.String("in", "-", "markup file, or - for stdin")
	from := fs.String("from", "", "input format: xml, html or markdown (default from -in, else xml)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	doc, err := c.readMarkup(*in, *from)
	if err != nil {
		return err
	}
	headers := wikitable.TableHeaders(doc)
	if headers == nil {
		return ErrNoTable
	}
	for _, h := range headers {
		fmt.Fprintln(c.stdout, h)
	}
	return nil
}

// markupSchema returns the configured schema or, when no columns are
// configured, an all-text schema built from the headers of the document's
// only table.
func (c *Command) markupSchema(doc *html.Node) (records.Schema, error) {
	if len(c.cfg.Table.Columns) > 0 {
		return c.cfg.Table, nil
	}
	schema := records.SchemaFromHeaders(wikitable.TableHeaders(doc))
	if len(schema.Columns) == 0 {
		return schema, fmt.Errorf("%w: configure table.columns to parse it", ErrNoTable)
	}
	schema.DateLayout = c.cfg.Table.DateLayout
	return schema, nil
}
