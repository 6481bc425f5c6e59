package formatter

import (
	"climate-parser/errors"
	"climate-parser/models"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Output formats understood by the formatter.
const (
	FormatNameText = "text"
	FormatNameJSON = "json"
	FormatNameCSV  = "csv"
)

// ValidFormats lists every supported output format.
var ValidFormats = []string{FormatNameText, FormatNameJSON, FormatNameCSV}

// RecordData is the JSON shape of a record.
// Temperature is pre-encoded so non-finite values survive as strings.
type RecordData struct {
	City        string          `json:"city"`
	Year        uint32          `json:"year"`
	Temperature json.RawMessage `json:"temperature"`
}

// ErrorData is the JSON shape of a parse failure.
type ErrorData struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Format renders a record in the named format.
func Format(record models.Record, format string) (string, error) {
	switch format {
	case FormatNameJSON:
		return FormatJSON(record)
	case FormatNameCSV:
		return FormatCSV(record)
	case FormatNameText, "":
		return FormatText(record), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// FormatText returns the text representation of the record
func FormatText(record models.Record) string {
	return fmt.Sprintf("Record { city: %q, year: %d, temperature: %s }\n",
		record.City, record.Year, formatTemperature(record.Temperature))
}

// FormatJSON returns the JSON representation of the record
func FormatJSON(record models.Record) (string, error) {
	data := RecordData{
		City:        record.City,
		Year:        record.Year,
		Temperature: temperatureJSON(record.Temperature),
	}
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding record: %w", err)
	}
	return string(jsonBytes) + "\n", nil
}

// FormatCSV returns the CSV representation of the record, header included
func FormatCSV(record models.Record) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	rows := [][]string{
		{"City", "Year", "Temperature"},
		{
			record.City,
			strconv.FormatUint(uint64(record.Year), 10),
			formatTemperature(record.Temperature),
		},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing csv: %w", err)
	}
	return sb.String(), nil
}

// FormatError renders a parse failure. JSON output carries the error kind;
// text and CSV output are the plain message.
func FormatError(err error, format string) string {
	if format != FormatNameJSON {
		return fmt.Sprintf("Error: %v\n", err)
	}

	kind := "unknown"
	if k, ok := errors.KindOf(err); ok {
		kind = k.String()
	}
	jsonBytes, marshalErr := json.MarshalIndent(ErrorData{Error: err.Error(), Kind: kind}, "", "  ")
	if marshalErr != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}
	return string(jsonBytes) + "\n"
}

// formatTemperature prints the shortest text that round-trips through float32
func formatTemperature(t float32) string {
	return strconv.FormatFloat(float64(t), 'g', -1, 32)
}

// temperatureJSON encodes finite values as numbers and the rest as strings
func temperatureJSON(t float32) json.RawMessage {
	f := float64(t)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.RawMessage(strconv.Quote(formatTemperature(t)))
	}
	return json.RawMessage(formatTemperature(t))
}
