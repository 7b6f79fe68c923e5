package geo

import (
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
)

// TextDecoder converts raw DBF text into UTF-8.
type TextDecoder func(raw string) string

// FieldName returns the DBF field name without NUL padding, decoded like text values.
func FieldName(f shp.Field, decode TextDecoder) string {
	name := strings.TrimRight(string(f.Name[:]), "\x00")
	if decode != nil {
		return decode(name)
	}

	return name
}

// AttributeValue types a raw DBF value according to its field descriptor.
// Blank values of non-character fields become nil (JSON null).
func AttributeValue(f shp.Field, raw string, decode TextDecoder) any {
	value := strings.Trim(raw, " \x00")

	switch f.Fieldtype {
	case 'N', 'F':
		if value == "" {
			return nil
		}
		if f.Precision == 0 {
			if i, err := strconv.ParseInt(value, 10, 64); err == nil {
				return i
			}
		}
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
		// e.g. "*****" overflow markers written by some tools
		return nil

	case 'L':
		switch value {
		case "T", "t", "Y", "y":
			return true
		case "F", "f", "N", "n":
			return false
		}
		return nil

	case 'D':
		if value == "" {
			return nil
		}
		if len(value) == 8 {
			if _, err := strconv.Atoi(value); err == nil {
				return value[0:4] + "-" + value[4:6] + "-" + value[6:8]
			}
		}
		return value
	}

	// C, M and anything unknown are text
	if decode != nil {
		return decode(value)
	}

	return value
}
