package records

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tsawler/wikitable/scalar"
)

// ColumnType selects how a column's cells are decoded.
type ColumnType string

const (
	// Text columns decode to the trimmed cell text.
	Text ColumnType = "text"
	// Date columns decode to time.Time, or nil when blank or invalid.
	Date ColumnType = "date"
	// Int columns decode to int64.
	Int ColumnType = "int"
	// Float columns decode to float64.
	Float ColumnType = "float"
)

// Column describes one table column.
type Column struct {
	Name string     `mapstructure:"name" yaml:"name" json:"name" validate:"required"`
	Type ColumnType `mapstructure:"type" yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=text date int float"`
}

// Kind returns the column type, defaulting to Text.
func (c Column) Kind() ColumnType {
	if c.Type == "" {
		return Text
	}
	return c.Type
}

// Schema describes the columns of a table, in order.
type Schema struct {
	Columns []Column `mapstructure:"columns" yaml:"columns" json:"columns" validate:"min=1,unique=Name,dive"`

	// DateLayout is tried before the canonical YYYY-MM-DD layout when
	// decoding date cells.
	DateLayout string `mapstructure:"date_layout" yaml:"date_layout,omitempty" json:"date_layout,omitempty"`
}

var validate = validator.New()

// Validate checks that the schema has at least one column, that names are
// set and unique, and that types are known.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}

// Headers returns the column names in order.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Name
	}
	return headers
}

// SchemaFromHeaders returns an all-text schema with one column per header.
// Headers are trimmed, and empty headers are skipped.
func SchemaFromHeaders(headers []string) Schema {
	s := Schema{}
	for _, h := range headers {
		if name := scalar.TrimSpace(h); name != "" {
			s.Columns = append(s.Columns, Column{Name: name, Type: Text})
		}
	}
	return s
}

// SchemaFromRecords returns an all-text schema holding every key used by
// recs, sorted by name. Maps do not keep key order, so configure the
// columns when their order matters.
func SchemaFromRecords(recs []Record) Schema {
	seen := map[string]bool{}
	var names []string
	for _, r := range recs {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return SchemaFromHeaders(names)
}

// Coerce returns a copy of r holding only the schema's columns, each
// converted to the column type. Imported records carry strings and
// numbers; Coerce turns them into the values DecodeRow would produce.
func (s Schema) Coerce(r Record) Record {
	out := make(Record, len(s.Columns))
	for _, c := range s.Columns {
		out[c.Name] = s.coerce(c, r[c.Name])
	}
	return out
}

func (s Schema) coerce(c Column, v any) any {
	if v == nil {
		return nil
	}

	switch c.Kind() {
	case Date:
		if t, ok := v.(time.Time); ok {
			return t
		}
		if t, ok := scalar.ParseDate(s.DateLayout, FormatValue(v)); ok {
			return t
		}
		return nil
	case Int:
		switch n := v.(type) {
		case int64:
			return n
		case int:
			return int64(n)
		case float64:
			return int64(n)
		}
		return scalar.ParseInt64(FormatValue(v))
	case Float:
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case int:
			return float64(n)
		}
		return scalar.ParseFloat64(FormatValue(v))
	default:
		if str, ok := v.(string); ok {
			return str
		}
		return FormatValue(v)
	}
}

// FormatValue renders a record value as cell text. Dates use the canonical
// layout and nil renders as "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return scalar.FormatDate(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
