package parser

import (
	"errors"
	"strconv"
	"strings"

	customerrors "climate-parser/errors"
	"climate-parser/models"
)

const (
	delimiter  = ","
	fieldCount = 3
)

// Parse converts a "city,year,temperature" line into a Record.
// Checks run in a fixed order and the first failure is returned as a
// *errors.ParseError:
//   - empty input
//   - field count other than three (empty fields are kept, nothing is trimmed)
//   - empty city
//   - year that is not a base-10 uint32
//   - temperature that is not a float32
//
// Parse has no side effects and is safe for concurrent use.
func Parse(s string) (models.Record, error) {
	// strings.Split("", ",") yields one field, so emptiness is checked first.
	if s == "" {
		return models.Record{}, customerrors.New(customerrors.Empty)
	}

	fields := strings.Split(s, delimiter)
	if len(fields) != fieldCount {
		return models.Record{}, customerrors.New(customerrors.WrongFieldCount)
	}
	city, yearText, tempText := fields[0], fields[1], fields[2]

	if city == "" {
		return models.Record{}, customerrors.New(customerrors.MissingIdentifier)
	}

	year, err := strconv.ParseUint(yearText, 10, 32)
	if err != nil {
		return models.Record{}, customerrors.WrapYear(err)
	}

	temp, err := parseTemperature(tempText)
	if err != nil {
		return models.Record{}, customerrors.WrapMeasurement(err)
	}

	return models.Record{
		City:        city,
		Year:        uint32(year),
		Temperature: temp,
	}, nil
}

// parseTemperature accepts well-formed text that overflows float32 as ±Inf.
func parseTemperature(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(f), nil
}
