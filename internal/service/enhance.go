package service

import (
	"context"
	"fmt"
	"strings"
)

// Enhancer turns a rough user prompt into structured system instructions.
// Implementations may call out to a model; the default one is local.
type Enhancer interface {
	Enhance(ctx context.Context, draft string) (string, error)
}

// enhanceTemplate is filled with the draft twice: once for the role line and
// once for the task line.
const enhanceTemplate = `[SYSTEM GENERATED TEMPLATE]

Role: Expert in the field related to "%s"
Task: %s

Instructions:
1. Analyze the input data carefully.
2. Provide a step-by-step breakdown.
3. Ensure tone is professional and concise.

Output Format: Markdown`

// TemplateEnhancer is an Enhancer that renders a fixed instruction template
// around the draft. It needs no network access.
type TemplateEnhancer struct{}

// Enhance renders the template. It fails only when ctx is already done.
func (TemplateEnhancer) Enhance(ctx context.Context, draft string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("service.TemplateEnhancer.Enhance: %w", err)
	}
	draft = strings.TrimSpace(draft)
	return fmt.Sprintf(enhanceTemplate, draft, draft), nil
}
