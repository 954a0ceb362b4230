// Package format provides file format detection for the wikitable tools.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported input or output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// XML indicates XML markup such as Confluence storage format or XHTML.
	XML
	// HTML indicates an HTML document.
	HTML
	// Markdown indicates a Markdown document with pipe tables.
	Markdown
	// YAML indicates a YAML list of records.
	YAML
	// JSON indicates a JSON array of records.
	JSON
	// CSV indicates comma-separated records with a header line.
	CSV
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case XML:
		return "XML"
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	case CSV:
		return "CSV"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case XML:
		return ".xml"
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case YAML:
		return ".yaml"
	case JSON:
		return ".json"
	case CSV:
		return ".csv"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// IsMarkup reports whether the format holds a table as markup rather
// than as a list of records.
func (f Format) IsMarkup() bool {
	return f == XML || f == HTML || f == Markdown
}

// Parse returns the format with the given name. Names are matched
// case-insensitively against String and the extension without its dot.
func Parse(name string) (Format, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	switch name {
	case "xml", "xhtml", "storage":
		return XML, nil
	case "html", "htm":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "xlsx", "excel":
		return XLSX, nil
	}
	return Unknown, fmt.Errorf("unknown format %q", name)
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xml", ".xhtml":
		return XML
	case ".html", ".htm":
		return HTML
	case ".md", ".markdown":
		return Markdown
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	case ".csv":
		return CSV
	case ".xlsx":
		return XLSX
	default:
		return Unknown
	}
}

// DetectFromMagic checks the leading bytes of a file to determine format.
// Returns Unknown if the format cannot be determined from content alone.
func DetectFromMagic(data []byte) Format {
	// ZIP magic: PK\x03\x04. XLSX is the only ZIP-based format handled.
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return XLSX
	}

	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	head := strings.ToUpper(string(data[:min(512, len(data))]))
	switch {
	case strings.HasPrefix(head, "<!DOCTYPE HTML"), strings.HasPrefix(head, "<HTML"):
		return HTML
	case strings.HasPrefix(head, "<"):
		// Confluence storage format and XHTML fragments
		return XML
	case data[0] == '{' || data[0] == '[':
		return JSON
	case strings.HasPrefix(head, "|"):
		return Markdown
	}
	return Unknown
}
