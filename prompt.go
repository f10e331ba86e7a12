package scribe

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Structure selects the outline shape for GenerateOutline.
type Structure string

const (
	StructureStandard Structure = "standard"
	StructureAcademic Structure = "academic"
	StructureBusiness Structure = "business"
	StructureCreative Structure = "creative"
)

func (s Structure) valid() bool {
	switch s {
	case StructureStandard, StructureAcademic, StructureBusiness, StructureCreative:
		return true
	}
	return false
}

// Depth selects how far ResearchTopic digs.
type Depth string

const (
	DepthShallow Depth = "shallow"
	DepthMedium  Depth = "medium"
	DepthDeep    Depth = "deep"
)

// depthInstructions maps each depth to the instruction embedded in the
// research prompt.
var depthInstructions = map[Depth]string{
	DepthShallow: "provide basic information and an overview",
	DepthMedium:  "provide detailed information from multiple angles",
	DepthDeep:    "provide in-depth analysis and expert-level insight",
}

// Project describes a writing project stored in the agent's current_project
// block.
type Project struct {
	Name         string
	Type         string // e.g. academic paper, business report, blog post
	Audience     string
	Requirements string
}

var (
	personaTmpl = template.Must(template.New("persona").Parse(`You are a professional writing assistant with the following traits:
1. Writing style: {{.Style}}
2. Fluent in many forms: news writing, academic papers, business reports, creative writing, technical documentation
3. Focused on logic, clarity, and readability
4. Able to adjust tone and register for the target audience
5. Capable of researching topics and pulling in current information`))

	projectTmpl = template.Must(template.New("project").Parse(`Writing project:
- Name: {{.Name}}
- Type: {{.Type}}
- Target audience: {{.Audience}}
- Special requirements: {{if .Requirements}}{{.Requirements}}{{else}}none{{end}}
- Started: {{.Started}}`))

	outlineTmpl = template.Must(template.New("outline").Parse(`Generate a detailed writing outline for the following topic.

Topic: {{.Topic}}
Structure type: {{.Structure}}

Provide:
1. Suggested article titles
2. The main section structure
3. Key points for each section
4. Notes on the logical flow
5. A recommended writing order

Keep the outline clear and well organized.`))

	expandTmpl = template.Must(template.New("expand").Parse(`Expand the following section into full paragraphs.

Section: {{.Section}}
Key points:
{{range .KeyPoints}}- {{.}}
{{end}}
Requirements:
1. Aim for roughly {{.WordCount}} words
2. Keep the logic clear with natural transitions
3. Use concrete examples and details
4. Make the content substantive and persuasive
5. Keep the language fluent and suited to the target audience

Output only the expanded content, with no extra commentary.`))

	polishTmpl = template.Must(template.New("polish").Parse(`Polish and improve the following content.

{{.Content}}

Polishing requirements:
1. Sharpen the language so it reads vividly and forcefully
2. Improve sentence structure and readability
3. Strengthen logic and coherence
4. Use precise wording and avoid repetition
5. Preserve the original argument and structure{{if .FocusAreas}}

Focus areas: {{.FocusAreas}}{{end}}

Output the polished content followed by a brief note on the main improvements.`))

	styleTmpl = template.Must(template.New("style").Parse(`Rewrite the following content in a {{.TargetStyle}} style.

{{.Content}}

Style requirements:
1. Target style: {{.TargetStyle}}
2. Preserve the core information and logical structure
3. Adjust tone and phrasing to match the target style
4. Make the transition feel natural, never forced
5. Keep the content accurate and professional

Output only the adjusted content.`))

	researchTmpl = template.Must(template.New("research").Parse(`Research the following topic; {{.Instructions}}.

Topic: {{.Topic}}

Provide:
1. Core concepts and definitions
2. Important facts and figures
3. Differing viewpoints and points of contention
4. Practical applications and case studies
5. Suggestions for further research

Research requirement: {{.Instructions}}, with accurate and relevant information.`))

	articleTmpl = template.Must(template.New("article").Parse(`Write an article about {{.Topic}}.`))
)

// render executes a template into a string. Templates are parsed at init, so
// execution only fails on bad data — surfaced rather than swallowed.
func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("scribe: render %s prompt: %w", t.Name(), err)
	}
	return b.String(), nil
}

// personaValue renders the persona block content for a given style.
func personaValue(style string) (string, error) {
	return render(personaTmpl, struct{ Style string }{Style: style})
}

// projectValue renders the current_project block content.
func projectValue(p Project, started time.Time) (string, error) {
	return render(projectTmpl, struct {
		Name, Type, Audience, Requirements, Started string
	}{
		Name:         p.Name,
		Type:         p.Type,
		Audience:     p.Audience,
		Requirements: p.Requirements,
		Started:      started.Format("2006-01-02 15:04:05"),
	})
}

// writingSkillsValue is the static writing_skills block content.
const writingSkillsValue = `Core writing skills:
- Structured writing: organizing a clear article structure
- Expression: accurate, vivid language
- Reasoning: building forceful arguments
- Audience awareness: tailoring content to the target reader
- Creative expression: staying creative without losing rigor`

// Block descriptions tell the server what each memory slot is for.
const (
	personaDescription = "Stores the agent's role and voice, guiding behavior and responses so interactions with the user stay consistent."
	skillsDescription  = "Stores writing-craft knowledge that helps the agent raise the quality of its output."
	projectDescription = "Stores the current writing project's details so the agent can track progress and requirements."
)
