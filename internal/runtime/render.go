package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// Render generates the actions (view) for the current state without transitioning.
// The boolean reports whether the host must read a line before calling Navigate.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	node, err := e.currentNode(state)
	if err != nil {
		return nil, false, err
	}

	switch n := node.(type) {
	case *domain.Question:
		if state.Attempt >= len(n.Prompts) {
			// Prompts exhausted: Navigate moves to Fail without reading.
			return nil, false, nil
		}
		return []domain.ActionRequest{
			content(state.Env.Resolve(n.Prompts[state.Attempt])),
			inputRequest(domain.InputText, domain.CueText, nil),
		}, true, nil

	case *domain.Branching:
		labels := make([]string, len(n.Options))
		for i, opt := range n.Options {
			labels[i] = opt.Text
		}
		return []domain.ActionRequest{
			content(renderChoices(state.Env.Resolve(n.Text), labels)),
			inputRequest(domain.InputChoice, domain.CueChoice, labels),
		}, true, nil

	case *domain.Terminating:
		return []domain.ActionRequest{
			content(state.Env.Resolve(n.Message)),
			inputRequest(domain.InputAcknowledge, domain.CueAcknowledge, nil),
		}, true, nil
	}

	return nil, false, fmt.Errorf("node %s: unsupported node type %T", state.CurrentNodeID, node)
}

// renderChoices lays out a question followed by its 1-based option listing.
func renderChoices(question string, labels []string) string {
	var sb strings.Builder
	sb.WriteString(question)
	sb.WriteString("\n")
	for i, label := range labels {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, label)
	}
	return sb.String()
}

func content(text string) domain.ActionRequest {
	return domain.ActionRequest{Type: domain.ActionRenderContent, Payload: text}
}

func inputRequest(kind domain.InputType, cue string, options []string) domain.ActionRequest {
	return domain.ActionRequest{
		Type: domain.ActionRequestInput,
		Payload: domain.InputRequest{
			Type:    kind,
			Cue:     cue,
			Options: options,
		},
	}
}
