package actions_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/botirk38/rivet/internal/agent"
	"github.com/botirk38/rivet/internal/runtime"
	"github.com/botirk38/rivet/internal/tui"
	"github.com/botirk38/rivet/testhelpers"
)

// newTestContext builds a command context around a scene and a scripted
// agent, with prompts disabled and console output suppressed.
func newTestContext(t *testing.T, scene *testhelpers.Scene, mock *agent.MockAgent) *runtime.Context {
	t.Helper()
	t.Setenv("RIVET_TEST_NO_INTERACTIVE", "1")

	splog := tui.NewSplog()
	splog.SetQuiet(true)
	t.Cleanup(func() { _ = splog.Close() })

	return &runtime.Context{
		Context:  context.Background(),
		Splog:    splog,
		RepoRoot: scene.Dir,
		Agent:    mock,
	}
}

// scriptedAgent scripts the usual two-session run: one analysis reply and one
// generation reply.
func scriptedAgent(analysisText, generationText string) (*agent.MockAgent, *agent.MockSession, *agent.MockSession) {
	analysis := agent.NewMockSession()
	analysis.EnqueueText(analysisText)

	generation := agent.NewMockSession()
	generation.EnqueueText(generationText)

	return agent.NewMockAgent(analysis, generation), analysis, generation
}

// scriptedPrompter feeds canned answers to the refinement loop.
type scriptedPrompter struct {
	confirms []bool
	inputs   []string
}

func (p *scriptedPrompter) Confirm(string, bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("no scripted confirm answer left")
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) TextInput(string, string) (string, error) {
	if len(p.inputs) == 0 {
		return "", fmt.Errorf("no scripted input answer left")
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}
