package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordCountInput struct {
	Text   string `json:"text" jsonschema:"required,description=The text to count words in"`
	Locale string `json:"locale,omitempty" jsonschema:"description=BCP 47 locale used for segmentation"`
}

type readabilityInput struct {
	Text       string `json:"text" jsonschema:"required,description=The text to score"`
	GradeLevel *int   `json:"grade_level,omitempty" jsonschema:"description=Target reading grade level"`
	Strict     bool   `json:"strict,omitempty"`
}

func TestGenerateSimple(t *testing.T) {
	schema := Generate[wordCountInput]()

	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "properties should be map[string]any")

	text, ok := props["text"].(map[string]any)
	require.True(t, ok, "text should exist")
	assert.Equal(t, "string", text["type"])
	assert.Equal(t, "The text to count words in", text["description"])

	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.Contains(t, required, "text")
	assert.NotContains(t, required, "locale")
}

func TestGeneratePointerAndBoolFields(t *testing.T) {
	schema := Generate[readabilityInput]()

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	_, hasGrade := props["grade_level"]
	assert.True(t, hasGrade, "grade_level should be in properties")

	strict, ok := props["strict"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "boolean", strict["type"])
}

func TestGenerateJSONRoundtrip(t *testing.T) {
	data, err := GenerateJSON[wordCountInput]()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "object", m["type"])
	assert.NotNil(t, m["properties"])
	assert.NotNil(t, m["required"])
}
