package render

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

var formats = []Format{
	FormatTable,
	FormatJSON,
	FormatYAML,
	FormatTOML,
}

func ParseFormat(str string) (Format, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for _, format := range formats {
		if string(format) == str {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %q", str)
}
