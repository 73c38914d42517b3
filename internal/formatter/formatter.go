// package formatter exports concert views to various formats (CSV, Markdown, plain text, JSON, YAML)
// and reads concert collections back for import
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/view"
)

// Format names an export/import encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format in the order the CLI shows them.
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON, FormatYAML}

var csvHeaders = []string{"ID", "Band", "Date", "City", "Event", "Artists", "Cost", "Year"}

// ParseFormat resolves a format name or common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ExportToCSV converts concerts to CSV with columns: ID, Band, Date, City, Event, Artists, Cost, Year
func ExportToCSV(concerts []models.Concert) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range concerts {
		record := []string{
			c.ID,
			c.Band,
			c.Date,
			c.City,
			c.Event,
			strconv.Itoa(c.Artists),
			strconv.FormatFloat(c.Cost, 'f', -1, 64),
			strconv.Itoa(c.Year),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a view as a Markdown document with a statistics section and a table.
func ExportToMarkdown(v view.View, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Concerti"
	}
	fmt.Fprintf(&buf, "# %s\n\n", title)

	s := v.Stats
	buf.WriteString("## Statistiche\n\n")
	fmt.Fprintf(&buf, "- **Concerti**: %d\n", s.TotalConcerts)
	fmt.Fprintf(&buf, "- **Spesa totale**: %s\n", FormatCost(s.TotalSpent))
	fmt.Fprintf(&buf, "- **Spesa media**: %s\n", FormatCost(s.AvgCost))
	fmt.Fprintf(&buf, "- **Artisti visti**: %d\n", s.TotalArtists)
	fmt.Fprintf(&buf, "- **Artisti unici**: %d\n", s.UniqueArtists)

	if len(s.TopBands) > 0 {
		buf.WriteString("\n### Più visti\n\n")
		for i, b := range s.TopBands {
			fmt.Fprintf(&buf, "%d. %s (%d)\n", i+1, b.Name, b.Count)
		}
	}

	buf.WriteString("\n## Concerti\n\n")
	if len(v.Concerts) == 0 {
		buf.WriteString("_Nessun concerto._\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("| Band | Data | Città | Evento | Artisti | Costo |\n")
	buf.WriteString("|---|---|---|---|---:|---:|\n")
	for _, c := range v.Concerts {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %d | %s |\n",
			escapeCell(c.Band), escapeCell(c.Date), escapeCell(c.City), escapeCell(c.Event),
			c.Artists, FormatCost(c.Cost))
	}

	return buf.Bytes(), nil
}

// ExportToText renders a view as a numbered plain text list followed by totals.
func ExportToText(v view.View) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Concerti: %d\n\n", len(v.Concerts))
	for i, c := range v.Concerts {
		fmt.Fprintf(&buf, "%d. %s - %s, %s", i+1, c.Date, c.Band, c.City)
		if c.Event != "" {
			fmt.Fprintf(&buf, " (%s)", c.Event)
		}
		fmt.Fprintf(&buf, " [%s]\n", FormatCost(c.Cost))
	}

	fmt.Fprintf(&buf, "\nTotale: %s, media: %s\n", FormatCost(v.Stats.TotalSpent), FormatCost(v.Stats.AvgCost))
	return buf.Bytes(), nil
}

// ExportToJSON encodes concerts as an indented JSON array.
func ExportToJSON(concerts []models.Concert) ([]byte, error) {
	if concerts == nil {
		concerts = []models.Concert{}
	}
	return shared.MarshalJSON(concerts, true)
}

// ExportToYAML encodes concerts as a YAML sequence.
func ExportToYAML(concerts []models.Concert) ([]byte, error) {
	if concerts == nil {
		concerts = []models.Concert{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(concerts); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Export renders v in format.
func Export(v view.View, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(v.Concerts)
	case FormatMarkdown:
		return ExportToMarkdown(v, "")
	case FormatText:
		return ExportToText(v)
	case FormatJSON:
		return ExportToJSON(v.Concerts)
	case FormatYAML:
		return ExportToYAML(v.Concerts)
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
}

// WriteExport renders v in format and writes it to path.
//
// Defaults to concerts.{format} as the filename. A path of "-" writes to w instead.
func WriteExport(v view.View, format Format, path string, w io.Writer) (string, error) {
	data, err := Export(v, format)
	if err != nil {
		return "", err
	}

	if path == "-" {
		if _, err := w.Write(data); err != nil {
			return "", fmt.Errorf("failed to write export: %w", err)
		}
		return path, nil
	}

	if path == "" {
		path = "concerts." + string(format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}
	return path, nil
}

// ParseConcerts decodes a collection written by [ExportToJSON], [ExportToYAML] or [ExportToCSV].
//
// Derived fields are read as-is; callers re-derive them on import.
func ParseConcerts(data []byte, format Format) ([]models.Concert, error) {
	var concerts []models.Concert

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &concerts); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &concerts); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}
	case FormatCSV:
		var err error
		if concerts, err = parseCSV(data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot import %q", shared.ErrUnknownFormat, format)
	}

	if concerts == nil {
		concerts = []models.Concert{}
	}
	return concerts, nil
}

func parseCSV(data []byte) ([]models.Concert, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"band", "date"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: CSV is missing the %q column", shared.ErrInvalidInput, required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	concerts := make([]models.Concert, 0, len(rows)-1)
	for n, row := range rows[1:] {
		c := models.Concert{
			ID:    field(row, "id"),
			Band:  field(row, "band"),
			Date:  field(row, "date"),
			City:  field(row, "city"),
			Event: field(row, "event"),
		}
		if raw := field(row, "cost"); raw != "" {
			cost, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: bad cost %q", shared.ErrInvalidInput, n+2, raw)
			}
			c.Cost = cost
		}
		concerts = append(concerts, c)
	}
	return concerts, nil
}

// FormatCost renders an amount in euros with two decimals.
func FormatCost(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
