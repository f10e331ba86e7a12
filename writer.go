package scribe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mudler/xlog"

	"github.com/scribekit/scribe/letta"
)

// StartProject overwrites the agent's current_project block with the
// project's details. The block is replaced wholesale; there is no merge.
func (a *Assistant) StartProject(ctx context.Context, p Project) error {
	id, err := a.agentID()
	if err != nil {
		return err
	}

	info, err := projectValue(p, time.Now())
	if err != nil {
		return err
	}

	if _, err := a.client.Blocks.Modify(ctx, id, BlockProject, letta.ModifyBlockRequest{Value: info}); err != nil {
		return err
	}

	a.mu.Lock()
	a.trans.Project = p.Name
	a.mu.Unlock()

	xlog.Info("writing project started", "name", p.Name, "type", p.Type, "audience", p.Audience)
	return nil
}

// GenerateOutline asks the agent for a writing outline on the topic. An
// empty structure defaults to StructureStandard.
func (a *Assistant) GenerateOutline(ctx context.Context, topic string, structure Structure) (string, error) {
	if structure == "" {
		structure = StructureStandard
	}
	if !structure.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStructure, structure)
	}

	prompt, err := render(outlineTmpl, struct {
		Topic     string
		Structure Structure
	}{Topic: topic, Structure: structure})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "outline", prompt)
}

// ExpandContent turns a section's key points into full paragraphs of roughly
// wordCount words. A non-positive wordCount uses DefaultWordCount.
func (a *Assistant) ExpandContent(ctx context.Context, section string, keyPoints []string, wordCount int) (string, error) {
	if wordCount <= 0 {
		wordCount = DefaultWordCount
	}

	prompt, err := render(expandTmpl, struct {
		Section   string
		KeyPoints []string
		WordCount int
	}{Section: section, KeyPoints: keyPoints, WordCount: wordCount})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "expand", prompt)
}

// PolishContent improves the given content, optionally concentrating on
// specific focus areas (fluency, logic, tone).
func (a *Assistant) PolishContent(ctx context.Context, content string, focusAreas ...string) (string, error) {
	prompt, err := render(polishTmpl, struct {
		Content    string
		FocusAreas string
	}{Content: content, FocusAreas: strings.Join(focusAreas, ", ")})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "polish", prompt)
}

// AdjustStyle rewrites the content in the target style (formal, relaxed,
// academic, business) without changing its substance.
func (a *Assistant) AdjustStyle(ctx context.Context, content, targetStyle string) (string, error) {
	prompt, err := render(styleTmpl, struct {
		Content     string
		TargetStyle string
	}{Content: content, TargetStyle: targetStyle})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "style", prompt)
}

// ResearchTopic gathers information on the topic at the requested depth. An
// empty depth defaults to DepthMedium.
func (a *Assistant) ResearchTopic(ctx context.Context, topic string, depth Depth) (string, error) {
	if depth == "" {
		depth = DepthMedium
	}
	instructions, ok := depthInstructions[depth]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDepth, depth)
	}

	prompt, err := render(researchTmpl, struct {
		Topic        string
		Instructions string
	}{Topic: topic, Instructions: instructions})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "research", prompt)
}

// WriteArticle is the one-shot path: a single prompt, a whole article back.
func (a *Assistant) WriteArticle(ctx context.Context, topic string) (string, error) {
	prompt, err := render(articleTmpl, struct{ Topic string }{Topic: topic})
	if err != nil {
		return "", err
	}
	return a.send(ctx, "article", prompt)
}

// Progress reports the agent's view of the current project.
type Progress struct {
	CurrentProject string
	AgentID        string
	AgentName      string
}

// Progress reads the current_project block back from the server.
func (a *Assistant) Progress(ctx context.Context) (*Progress, error) {
	if _, err := a.agentID(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	agent := a.agent
	a.mu.Unlock()

	block, err := a.client.Blocks.Retrieve(ctx, agent.ID, BlockProject)
	if err != nil {
		return nil, err
	}

	return &Progress{
		CurrentProject: block.Value,
		AgentID:        agent.ID,
		AgentName:      agent.Name,
	}, nil
}
