package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive and accepts "yml" for YAML. Any
// unrecognized format returns FormatTable.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON", "yml")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// ValidateFormat checks that s names a known format. The empty string and
// "table" are valid.
//
// Parameters:
//   - s: Format string from a flag or config file
//
// Returns:
//   - error: When s is not a known format
func ValidateFormat(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "csv", "json", "xml", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (valid: table, json, csv, xml, yaml)", s)
	}
}

// IsStructuredFormat returns true if the format requires structured output (not table).
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true for CSV, JSON, XML and YAML; false for table
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML || f == FormatYAML
}

// Formatter handles writing data in a specific format.
type Formatter struct {
	format Format
	writer io.Writer
	indent string
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A new formatter instance ready to write data
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// WithIndent sets the JSON indentation and returns the formatter. The
// default is compact single-line JSON.
//
// Parameters:
//   - indent: Indent string (e.g., "  ")
//
// Returns:
//   - *Formatter: The formatter for method chaining
func (f *Formatter) WithIndent(indent string) *Formatter {
	f.indent = indent
	return f
}

// Format returns the current format.
//
// Returns:
//   - Format: The format this formatter is configured to use
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes a header row and data rows as CSV.
//
// csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column headers
//   - rows: Data rows with one value per header
//
// Returns:
//   - error: When write or flush fails
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as JSON. HTML characters are not escaped so asset
// text such as "R&D <draft>" stays readable.
//
// Parameters:
//   - data: Data structure to encode as JSON
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteJSON(data any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	if f.indent != "" {
		encoder.SetIndent("", f.indent)
	}
	return encoder.Encode(data)
}

// WriteXML writes data as indented XML preceded by the XML header.
//
// Parameters:
//   - data: Data structure to encode as XML (must have xml tags)
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteXML(data any) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

// WriteYAML writes data as YAML with two-space indentation.
//
// Parameters:
//   - data: Data structure to encode as YAML
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteYAML(data any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}
