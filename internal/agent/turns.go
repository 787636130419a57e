// Package agent wraps the conversational agent capability: session lifecycle,
// message submission with streaming callbacks, and resilient extraction of the
// final assistant answer from a conversation history.
package agent

// Turn and step kinds as they appear in agent conversation output. Other kinds
// (tool invocations, thinking blocks) pass through untouched and are ignored by
// the extractor.
const (
	TurnKindConversation     = "agentConversationTurn"
	StepKindAssistantMessage = "assistantMessage"
	StepKindToolUse          = "toolUse"
	StepKindThinking         = "thinking"
)

// ConversationTurn is one exchange unit produced by an agent session.
// Steps may be nil when the turn carried no usable content.
type ConversationTurn struct {
	Kind  string `json:"kind"`
	Steps []Step `json:"steps,omitempty"`
}

// Step is one sub-event within a turn, such as a single assistant message or
// one tool invocation. Message is nil for steps that carry no message payload.
type Step struct {
	Kind    string       `json:"kind"`
	Message *StepMessage `json:"message,omitempty"`
}

// StepMessage carries the textual payload of a step. Text may be empty.
type StepMessage struct {
	Text string `json:"text"`
}

// CountSteps returns the total number of steps across all turns. Used for
// diagnostic detail when a conversation yields no usable text.
func CountSteps(turns []ConversationTurn) int {
	total := 0
	for _, turn := range turns {
		total += len(turn.Steps)
	}
	return total
}
