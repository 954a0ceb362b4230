package records

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/wikitable/scalar"
)

// WriteYAML writes records as a YAML sequence of mappings with keys in
// column order.
func WriteYAML(w io.Writer, s Schema, recs []Record) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range recs {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range s.Columns {
			val, err := yamlValue(r[c.Name])
			if err != nil {
				return fmt.Errorf("encoding %q: %w", c.Name, err)
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: c.Name},
				val,
			)
		}
		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return enc.Close()
}

func yamlValue(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case time.Time:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: scalar.FormatDate(x)}, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// WriteJSON writes records as a JSON array of objects with keys in column
// order. Dates are written as YYYY-MM-DD strings.
func WriteJSON(w io.Writer, s Schema, recs []Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("[")
	for i, r := range recs {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  {")
		for j, c := range s.Columns {
			if j > 0 {
				bw.WriteString(", ")
			}
			key, err := json.Marshal(c.Name)
			if err != nil {
				return fmt.Errorf("encoding key %q: %w", c.Name, err)
			}
			val, err := json.Marshal(jsonValue(r[c.Name]))
			if err != nil {
				return fmt.Errorf("encoding %q: %w", c.Name, err)
			}
			bw.Write(key)
			bw.WriteString(": ")
			bw.Write(val)
		}
		bw.WriteString("}")
	}
	if len(recs) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

func jsonValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return scalar.FormatDate(t)
	}
	return v
}

// WriteCSV writes a header line of column names followed by one line per
// record.
func WriteCSV(w io.Writer, s Schema, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Headers()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range recs {
		line := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			line[i] = FormatValue(r[c.Name])
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMarkdown writes records as a Markdown pipe table.
func WriteMarkdown(w io.Writer, s Schema, recs []Record) error {
	if len(s.Columns) == 0 {
		return nil
	}

	var sb strings.Builder

	// Header row
	for j, c := range s.Columns {
		sb.WriteString("| ")
		sb.WriteString(escapeMarkdown(c.Name))
		sb.WriteString(" ")
		if j == len(s.Columns)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range s.Columns {
		sb.WriteString("|---")
		if j == len(s.Columns)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for _, r := range recs {
		for j, c := range s.Columns {
			sb.WriteString("| ")
			sb.WriteString(escapeMarkdown(FormatValue(r[c.Name])))
			sb.WriteString(" ")
			if j == len(s.Columns)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeMarkdown escapes characters that break a pipe table cell.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '|':
			sb.WriteString("\\|")
		case '\n':
			sb.WriteString(" ")
		case '\r':
			// Skip
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
