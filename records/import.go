package records

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads a YAML sequence of mappings. Empty input yields no
// records.
func ReadYAML(r io.Reader) ([]Record, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("reading YAML: %w", err)
	}
	return toRecords(raw), nil
}

// ReadJSON reads a JSON array of objects.
func ReadJSON(r io.Reader) ([]Record, error) {
	var raw []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	return toRecords(raw), nil
}

func toRecords(raw []map[string]any) []Record {
	recs := make([]Record, len(raw))
	for i, m := range raw {
		recs[i] = Record(m)
	}
	return recs
}

// ReadCSV reads comma-separated records whose first line holds the
// column names.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return fromRows(lines), nil
}

// fromRows turns a header line plus data lines into records. Short lines
// leave the missing columns nil; extra cells are dropped.
func fromRows(lines [][]string) []Record {
	if len(lines) == 0 {
		return []Record{}
	}
	headers := lines[0]
	recs := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		r := make(Record, len(headers))
		for i, h := range headers {
			if i < len(line) {
				r[h] = line[i]
			} else {
				r[h] = nil
			}
		}
		recs = append(recs, r)
	}
	return recs
}
