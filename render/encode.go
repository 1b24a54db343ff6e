package render

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/pasclex/analyzer"
	"go.yaml.in/yaml/v3"
)

func JSON(w io.Writer, opts Options, reports ...*analyzer.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newDocuments(reports, opts))
}

func YAML(w io.Writer, opts Options, reports ...*analyzer.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocuments(reports, opts)); err != nil {
		return err
	}
	return encoder.Close()
}

func TOML(w io.Writer, opts Options, reports ...*analyzer.Report) error {
	return toml.NewEncoder(w).Encode(newDocuments(reports, opts))
}
