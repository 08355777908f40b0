package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWrite(t *testing.T) {
	report := Report{
		Source:      "/content/Company_Names_Dataset.csv",
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Company: "Apple", Result: "Steve Jobs, Steve Wozniak", Found: true},
			{Company: "Nowhere", Result: "No search results found"},
		},
	}

	var buff bytes.Buffer
	require.NoError(t, Write(&buff, report))

	assert.Contains(t, buff.String(), "company: Apple")
	assert.NotContains(t, buff.String(), "error:")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buff.Bytes(), &decoded))

	entries, ok := decoded["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "Founder lookup report", schema["title"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "entries")
	assert.Contains(t, properties, "source")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "company-names-dataset-founders.yaml", Filename("/data/Company Names Dataset.csv"))
	assert.Equal(t, "companies-founders.yaml", Filename("/tmp/.csv"))
}
