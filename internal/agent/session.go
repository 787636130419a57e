package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	riveterrors "github.com/botirk38/rivet/internal/errors"
)

// DefaultModel is used when neither the config file nor OpenOptions name one.
const DefaultModel = "claude-sonnet-4-5"

// maxOutputTokens bounds a single response. Commit messages and PR
// descriptions fit comfortably below this.
const maxOutputTokens = 8192

// OpenOptions configures a new agent session.
type OpenOptions struct {
	// APIKey is the credential for the agent transport. When empty, the
	// ANTHROPIC_API_KEY environment variable is the fallback.
	APIKey string
	// Model selects the model for the whole session. Empty means DefaultModel.
	Model string
	// WorkingDir is the repository the conversation is about. The API
	// transport does not need it; transports that execute locally do.
	WorkingDir string
}

// SubmitOptions carries the optional streaming callbacks for one submission.
type SubmitOptions struct {
	// OnDelta fires zero or more times with incremental text fragments in
	// arrival order, strictly before Submit returns. Fragments may be dropped
	// by the transport; OnDelta is for live display, never the source of truth.
	OnDelta func(text string)
	// OnStep fires once per completed step, in order. It carries structurally
	// complete message text and is the preferred live-capture source.
	OnStep func(step Step)
}

// Agent opens conversation sessions.
type Agent interface {
	Open(ctx context.Context, opts OpenOptions) (Session, error)
}

// Session is one continuous agent conversation. Submissions share history, so
// a later Submit continues the conversation without re-sending prior context.
// Sessions are not safe for concurrent use; callers submit sequentially.
type Session interface {
	Submit(ctx context.Context, prompt string, opts SubmitOptions) ([]ConversationTurn, error)
	Close() error
}

// AnthropicAgent opens sessions against the Anthropic API.
type AnthropicAgent struct{}

// NewAnthropicAgent creates a new AnthropicAgent.
func NewAnthropicAgent() *AnthropicAgent {
	return &AnthropicAgent{}
}

// Open validates credentials and returns a fresh session with empty history.
// It fails with a ConfigurationError when no API key is available from either
// the options or the environment.
func (a *AnthropicAgent) Open(ctx context.Context, opts OpenOptions) (Session, error) {
	key := opts.APIKey
	if key == "" {
		key = os.Getenv("ANTHROPIC_API_KEY")
	}
	if key == "" {
		return nil, riveterrors.NewConfigurationError("ANTHROPIC_API_KEY",
			"Export the environment variable so rivet can reach the Anthropic API.")
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &anthropicSession{
		client: anthropic.NewClient(option.WithAPIKey(key)),
		model:  anthropic.Model(model),
	}, nil
}

type anthropicSession struct {
	client  anthropic.Client
	model   anthropic.Model
	history []anthropic.MessageParam
}

// Submit appends the prompt to the session history, streams the response, and
// returns the conversation turn for this exchange. The assistant reply is
// retained in history so subsequent Submits continue the same conversation.
func (s *anthropicSession) Submit(ctx context.Context, prompt string, opts SubmitOptions) ([]ConversationTurn, error) {
	s.history = append(s.history, anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleUser,
		Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
	})

	params := anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: maxOutputTokens,
		Messages:  s.history,
	}

	stream := s.client.Messages.NewStreaming(ctx, params)
	var msg anthropic.Message
	for stream.Next() {
		event := stream.Current()
		if err := msg.Accumulate(event); err != nil {
			return nil, fmt.Errorf("failed to accumulate stream event: %w", err)
		}

		switch ev := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			if opts.OnDelta != nil {
				if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
					opts.OnDelta(delta.Text)
				}
			}
		case anthropic.ContentBlockStopEvent:
			// The block at ev.Index is fully accumulated once its stop
			// event arrives.
			if opts.OnStep != nil && int(ev.Index) < len(msg.Content) {
				opts.OnStep(stepFromBlock(msg.Content[ev.Index]))
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to stream response: %w", err)
	}

	s.history = append(s.history, msg.ToParam())

	steps := make([]Step, 0, len(msg.Content))
	for _, block := range msg.Content {
		steps = append(steps, stepFromBlock(block))
	}

	return []ConversationTurn{{Kind: TurnKindConversation, Steps: steps}}, nil
}

// Close drops the conversation history. The underlying client holds no
// connection state.
func (s *anthropicSession) Close() error {
	s.history = nil
	return nil
}

func stepFromBlock(block anthropic.ContentBlockUnion) Step {
	switch block.Type {
	case "text":
		return Step{Kind: StepKindAssistantMessage, Message: &StepMessage{Text: block.Text}}
	case "tool_use":
		return Step{Kind: StepKindToolUse}
	case "thinking", "redacted_thinking":
		return Step{Kind: StepKindThinking}
	default:
		return Step{Kind: block.Type}
	}
}
