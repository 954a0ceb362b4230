package app

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/format"
	"github.com/tsawler/wikitable/markup"
	"github.com/tsawler/wikitable/records"
)

// stdio names standard input or output in -in and -out.
const stdio = "-"

// chooseFormat returns the named format, else the one implied by path's
// extension, else def.
func chooseFormat(name, path string, def format.Format) (format.Format, error) {
	if name != "" {
		f, err := format.Parse(name)
		if err != nil {
			return format.Unknown, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
		}
		return f, nil
	}
	if path != stdio {
		if f := format.Detect(path); f != format.Unknown {
			return f, nil
		}
	}
	return def, nil
}

func isRecordFormat(f format.Format) bool {
	switch f {
	case format.YAML, format.JSON, format.CSV, format.Markdown, format.XLSX:
		return true
	}
	return false
}

func (c *Command) readMarkup(path, from string) (*html.Node, error) {
	if from == "" && path != stdio {
		return markup.Open(path)
	}
	f, err := chooseFormat(from, path, format.XML)
	if err != nil {
		return nil, err
	}
	if !f.IsMarkup() {
		return nil, fmt.Errorf("%w: cannot read %s as markup", ErrUnknownFormat, f)
	}
	if path == stdio {
		return markup.Load(c.stdin, f)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return markup.Load(file, f)
}

func (c *Command) readRecords(path string, f format.Format, sheet string) ([]records.Record, error) {
	var r io.Reader = c.stdin
	if path != stdio {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	switch f {
	case format.YAML:
		return records.ReadYAML(r)
	case format.JSON:
		return records.ReadJSON(r)
	case format.CSV:
		return records.ReadCSV(r)
	case format.XLSX:
		return records.ReadXLSX(r, sheet)
	}
	return nil, fmt.Errorf("%w: cannot read records from %s", ErrUnknownFormat, f)
}

func writeRecords(w io.Writer, f format.Format, s records.Schema, recs []records.Record, sheet string) error {
	switch f {
	case format.YAML:
		return records.WriteYAML(w, s, recs)
	case format.JSON:
		return records.WriteJSON(w, s, recs)
	case format.CSV:
		return records.WriteCSV(w, s, recs)
	case format.Markdown:
		return records.WriteMarkdown(w, s, recs)
	case format.XLSX:
		return records.WriteXLSX(w, s, recs, sheet)
	}
	return fmt.Errorf("%w: cannot write records as %s", ErrUnknownFormat, f)
}

// writeOutput runs write against stdout or a new file at path. Output is
// buffered so a failed write leaves no partial file behind.
func (c *Command) writeOutput(path string, write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if path == stdio {
		_, err := c.stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	c.log.WithField("file", path).Debug("wrote output")
	return nil
}
