package agent

import "strings"

// LatestAssistantText returns the most recent non-empty assistant message text
// from a conversation, scanning turns and steps newest to oldest. The second
// return value is false when no turn contains a usable assistant message.
// Nil or empty turn and step slices count as zero elements, not errors.
func LatestAssistantText(turns []ConversationTurn) (string, bool) {
	for i := len(turns) - 1; i >= 0; i-- {
		turn := turns[i]
		if turn.Kind != TurnKindConversation {
			continue
		}
		for j := len(turn.Steps) - 1; j >= 0; j-- {
			step := turn.Steps[j]
			if step.Kind != StepKindAssistantMessage || step.Message == nil {
				continue
			}
			text := strings.TrimSpace(step.Message.Text)
			if text != "" {
				return text, true
			}
		}
	}
	return "", false
}

// RecoverJSON extracts a best-effort JSON object substring from model output
// that may wrap it in markdown. It tries, in order: a fenced ```json or ```
// code block whose interior is a brace-delimited object, then the span from
// the first '{' to the last '}'. If neither pattern matches, the input is
// returned unchanged so that downstream parsing fails with a clear JSON error
// rather than silently losing data. This function never fails.
func RecoverJSON(text string) string {
	if block, ok := fencedObject(text); ok {
		return block
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last > first {
		return text[first : last+1]
	}

	return text
}

// fencedObject scans for ```json or bare ``` code blocks and returns the
// interior of the first one that holds a brace-delimited object.
func fencedObject(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		marker := strings.TrimSpace(lines[i])
		if marker != "```json" && marker != "```" {
			continue
		}

		var body []string
		closed := false
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "```" {
				closed = true
				break
			}
			body = append(body, lines[j])
		}
		if !closed {
			break
		}

		interior := strings.TrimSpace(strings.Join(body, "\n"))
		if strings.HasPrefix(interior, "{") && strings.HasSuffix(interior, "}") {
			return interior, true
		}

		// Not an object block; keep scanning after the closing fence.
		i = j
	}

	return "", false
}
