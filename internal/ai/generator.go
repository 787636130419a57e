// Package ai sequences the two model turns behind every rivet command: an
// analysis turn that condenses raw change data into a synopsis, and a
// generation turn that produces the artifact, a commit message or a pull
// request payload. It also owns the prompt templates and artifact parsers.
package ai

import (
	"context"
	"strings"

	"github.com/botirk38/rivet/internal/agent"
	riveterrors "github.com/botirk38/rivet/internal/errors"
	"github.com/botirk38/rivet/internal/tui"
)

// GeneratorOptions carries per-invocation configuration for a Generator.
type GeneratorOptions struct {
	// Model overrides the agent's default model when set.
	Model string

	// WorkingDir is the repository root the conversation is about.
	WorkingDir string

	// CommitStyle selects the commit style instruction block.
	CommitStyle string

	// CommitSystemPrompt and PRSystemPrompt are optional custom prompt
	// preambles from the repo config.
	CommitSystemPrompt string
	PRSystemPrompt     string
}

// Generator runs the Analyzing and Generating phases of one command. Each
// phase opens its own session: the generation conversation starts clean and
// grows only through regenerates.
type Generator struct {
	agent agent.Agent
	splog *tui.Splog
	phase tui.PhaseUI
	opts  GeneratorOptions
}

// NewGenerator creates a Generator.
func NewGenerator(ag agent.Agent, splog *tui.Splog, phase tui.PhaseUI, opts GeneratorOptions) *Generator {
	return &Generator{agent: ag, splog: splog, phase: phase, opts: opts}
}

func (g *Generator) openOptions() agent.OpenOptions {
	return agent.OpenOptions{
		Model:      g.opts.Model,
		WorkingDir: g.opts.WorkingDir,
	}
}

// GenerateCommitMessage runs both phases in commit mode. The returned run
// owns the open generation session for later regenerates; callers must Close
// it when the command ends.
func (g *Generator) GenerateCommitMessage(ctx context.Context, analysisCtx AnalysisContext) (*CommitRun, error) {
	summary, err := g.analyze(ctx, BuildCommitAnalysisPrompt(analysisCtx))
	if err != nil {
		return nil, err
	}

	g.splog.Info("Generating commit message...")
	session, err := g.agent.Open(ctx, g.openOptions())
	if err != nil {
		return nil, err
	}

	text, err := g.submitGeneration(ctx, session, BuildCommitGenerationPrompt(summary, g.opts.CommitStyle, g.opts.CommitSystemPrompt))
	if err != nil {
		// A failed first generation aborts the command, so the session has
		// no further use.
		_ = session.Close()
		return nil, err
	}

	return &CommitRun{generator: g, session: session, Message: ParseCommitMessage(text)}, nil
}

// GeneratePRDescription runs both phases in PR mode. The returned run owns
// the open generation session for later regenerates; callers must Close it
// when the command ends.
func (g *Generator) GeneratePRDescription(ctx context.Context, analysisCtx AnalysisContext) (*PRRun, error) {
	summary, err := g.analyze(ctx, BuildPRAnalysisPrompt(analysisCtx))
	if err != nil {
		return nil, err
	}

	g.splog.Info("Generating pull request description...")
	session, err := g.agent.Open(ctx, g.openOptions())
	if err != nil {
		return nil, err
	}

	text, err := g.submitGeneration(ctx, session, BuildPRGenerationPrompt(summary, g.opts.PRSystemPrompt, analysisCtx.PRTemplate))
	if err != nil {
		_ = session.Close()
		return nil, err
	}

	payload, err := ParsePRPayload(text)
	if err != nil {
		_ = session.Close()
		return nil, err
	}

	return &PRRun{generator: g, session: session, Payload: payload}, nil
}

// analyze runs the analysis turn on a short-lived session and returns the
// synopsis text. OnStep capture is primary; the conversation-history
// extractor is the fallback for transports that lose the callback.
func (g *Generator) analyze(ctx context.Context, prompt string) (string, error) {
	g.phase.Start("Analyzing changes")

	session, err := g.agent.Open(ctx, g.openOptions())
	if err != nil {
		g.phase.Fail("Analysis failed")
		return "", err
	}
	defer func() { _ = session.Close() }()

	var primary string
	var turns []agent.ConversationTurn
	err = g.splog.Quietly(func() error {
		var submitErr error
		turns, submitErr = session.Submit(ctx, prompt, agent.SubmitOptions{
			OnStep: func(step agent.Step) {
				if text := stepText(step); text != "" {
					primary = text
				}
			},
		})
		return submitErr
	})
	if err != nil {
		g.phase.Fail("Analysis failed")
		return "", err
	}

	summary := primary
	if summary == "" {
		if fallback, ok := agent.LatestAssistantText(turns); ok {
			summary = fallback
		}
	}
	if summary == "" {
		g.phase.Fail("Analysis produced no text")
		return "", riveterrors.NewEmptyAnalysisError(len(turns), agent.CountSteps(turns))
	}

	g.phase.Succeed("Analyzed changes")
	return summary, nil
}

// submitGeneration submits a generation or regenerate prompt on the given
// session, streaming deltas to the terminal, and returns the captured text.
// Diagnostics are suppressed for the duration so they never interleave with
// the streamed output.
func (g *Generator) submitGeneration(ctx context.Context, session agent.Session, prompt string) (string, error) {
	var primary string
	var streamed bool
	var turns []agent.ConversationTurn

	err := g.splog.Quietly(func() error {
		var submitErr error
		turns, submitErr = session.Submit(ctx, prompt, agent.SubmitOptions{
			OnDelta: func(text string) {
				streamed = true
				g.splog.Page(text)
			},
			OnStep: func(step agent.Step) {
				if text := stepText(step); text != "" {
					primary = text
				}
			},
		})
		return submitErr
	})
	if streamed {
		g.splog.Newline()
	}
	if err != nil {
		return "", err
	}

	text := primary
	if text == "" {
		if fallback, ok := agent.LatestAssistantText(turns); ok {
			text = fallback
		}
	}
	if text == "" {
		return "", riveterrors.NewEmptyGenerationError(len(turns), agent.CountSteps(turns))
	}

	return text, nil
}

func stepText(step agent.Step) string {
	if step.Kind != agent.StepKindAssistantMessage || step.Message == nil {
		return ""
	}
	return strings.TrimSpace(step.Message.Text)
}

// CommitRun holds the current commit message artifact and the open
// generation session behind it.
type CommitRun struct {
	generator *Generator
	session   agent.Session

	// Message is the current commit message artifact.
	Message string
}

// Regenerate submits feedback on the same generation session and returns the
// revised message. On error the prior Message stays in place.
func (r *CommitRun) Regenerate(ctx context.Context, feedback string) (string, error) {
	text, err := r.generator.submitGeneration(ctx, r.session, BuildCommitRegeneratePrompt(feedback))
	if err != nil {
		return "", err
	}
	r.Message = ParseCommitMessage(text)
	return r.Message, nil
}

// Close releases the generation session.
func (r *CommitRun) Close() error {
	return r.session.Close()
}

// PRRun holds the current pull request artifact and the open generation
// session behind it.
type PRRun struct {
	generator *Generator
	session   agent.Session

	// Payload is the current pull request artifact.
	Payload PRPayload
}

// Regenerate submits feedback on the same generation session and returns the
// revised payload. On error, including parse failures, the prior Payload
// stays in place.
func (r *PRRun) Regenerate(ctx context.Context, feedback string) (PRPayload, error) {
	text, err := r.generator.submitGeneration(ctx, r.session, BuildPRRegeneratePrompt(feedback))
	if err != nil {
		return PRPayload{}, err
	}

	payload, err := ParsePRPayload(text)
	if err != nil {
		return PRPayload{}, err
	}

	r.Payload = payload
	return payload, nil
}

// Close releases the generation session.
func (r *PRRun) Close() error {
	return r.session.Close()
}
