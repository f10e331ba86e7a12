package scribe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Template rendering ---

func TestPersonaValue_EmbedsStyle(t *testing.T) {
	persona, err := personaValue("Relaxed and conversational")
	require.NoError(t, err)
	assert.Contains(t, persona, "Writing style: Relaxed and conversational")
	assert.Contains(t, persona, "professional writing assistant")
}

func TestProjectValue_EmbedsFields(t *testing.T) {
	started := time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)
	info, err := projectValue(Project{
		Name:         "AI trends report",
		Type:         "technical report",
		Audience:     "engineering managers",
		Requirements: "include recent case studies",
	}, started)
	require.NoError(t, err)

	assert.Contains(t, info, "Name: AI trends report")
	assert.Contains(t, info, "Target audience: engineering managers")
	assert.Contains(t, info, "include recent case studies")
	assert.Contains(t, info, "2026-08-27 09:30:00")
}

func TestProjectValue_EmptyRequirements(t *testing.T) {
	info, err := projectValue(Project{Name: "n", Type: "t", Audience: "a"}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, info, "Special requirements: none")
}

func TestOutlinePrompt_EmbedsTopicVerbatim(t *testing.T) {
	prompt, err := render(outlineTmpl, struct {
		Topic     string
		Structure Structure
	}{Topic: "Typhoon preparedness on the southeast coast", Structure: StructureStandard})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Topic: Typhoon preparedness on the southeast coast")
	assert.Contains(t, prompt, "Structure type: standard")
}

func TestExpandPrompt_ListsKeyPoints(t *testing.T) {
	prompt, err := render(expandTmpl, struct {
		Section   string
		KeyPoints []string
		WordCount int
	}{
		Section:   "Overview",
		KeyPoints: []string{"history of the storm", "impact on daily life", "how to respond"},
		WordCount: 300,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Section: Overview")
	assert.Contains(t, prompt, "- history of the storm")
	assert.Contains(t, prompt, "- how to respond")
	assert.Contains(t, prompt, "roughly 300 words")
}

func TestPolishPrompt_FocusAreasOptional(t *testing.T) {
	withFocus, err := render(polishTmpl, struct {
		Content    string
		FocusAreas string
	}{Content: "Draft text.", FocusAreas: "fluency, logic"})
	require.NoError(t, err)
	assert.Contains(t, withFocus, "Focus areas: fluency, logic")

	noFocus, err := render(polishTmpl, struct {
		Content    string
		FocusAreas string
	}{Content: "Draft text."})
	require.NoError(t, err)
	assert.NotContains(t, noFocus, "Focus areas:")
	assert.Contains(t, noFocus, "Draft text.")
}

func TestStylePrompt_EmbedsTargetStyle(t *testing.T) {
	prompt, err := render(styleTmpl, struct {
		Content     string
		TargetStyle string
	}{Content: "Quarterly results improved.", TargetStyle: "relaxed and approachable"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "in a relaxed and approachable style")
	assert.Contains(t, prompt, "Quarterly results improved.")
}

func TestResearchPrompt_DepthInstructions(t *testing.T) {
	prompt, err := render(researchTmpl, struct {
		Topic        string
		Instructions string
	}{Topic: "AI in business", Instructions: depthInstructions[DepthDeep]})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Topic: AI in business")
	assert.Contains(t, prompt, "in-depth analysis")
}

// --- Enums ---

func TestStructure_Valid(t *testing.T) {
	for _, s := range []Structure{StructureStandard, StructureAcademic, StructureBusiness, StructureCreative} {
		assert.True(t, s.valid(), "structure %q should be valid", s)
	}
	assert.False(t, Structure("haiku").valid())
}

func TestDepthInstructions_AllDepthsCovered(t *testing.T) {
	for _, d := range []Depth{DepthShallow, DepthMedium, DepthDeep} {
		assert.NotEmpty(t, depthInstructions[d], "depth %q should have instructions", d)
	}
}
