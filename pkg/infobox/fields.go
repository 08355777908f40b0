package infobox

import "strings"

// Field is one infobox row: the text of its header cell and the text of its
// data cell.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Fields are the infobox rows in document order.
type Fields []Field

// Map returns the header label to cell text mapping. When a label is
// repeated the last row wins.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		m[field.Label] = field.Value
	}

	return m
}

// Matching returns the values of every row whose label contains the given
// substring. Matching is case-sensitive.
func (f Fields) Matching(substr string) []string {
	values := make([]string, 0)
	for _, field := range f {
		if strings.Contains(field.Label, substr) {
			values = append(values, field.Value)
		}
	}

	return values
}
