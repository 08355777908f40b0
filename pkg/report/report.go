// Package report describes the document written at the end of a batch run.
package report

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

type Entry struct {
	Company string `json:"company" yaml:"company" jsonschema:"description=Company name as read from the input file"`
	Result  string `json:"result" yaml:"result" jsonschema:"description=Founder names or the reason why none were found"`
	Found   bool   `json:"found" yaml:"found" jsonschema:"description=Whether founder information was found"`
}

type Report struct {
	Source      string    `json:"source" yaml:"source" jsonschema:"description=Path of the processed file"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Entries     []Entry   `json:"entries" yaml:"entries"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty" jsonschema:"description=Error which aborted the batch if any"`
}

// Write encodes the report as YAML.
func Write(w io.Writer, report Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "could not encode report")
	}

	if err := encoder.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Schema returns the JSON schema of the report document.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := reflector.Reflect(&Report{})
	schema.Title = "Founder lookup report"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// Filename derives the default report filename from the processed file path.
func Filename(source string) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	s := slug.Make(name)
	if s == "" {
		s = "companies"
	}

	return s + "-founders.yaml"
}
