package ai

import (
	"encoding/json"
	"strings"

	"github.com/botirk38/rivet/internal/agent"
	riveterrors "github.com/botirk38/rivet/internal/errors"
)

// ParseCommitMessage turns raw generation text into the commit artifact.
func ParseCommitMessage(raw string) string {
	return strings.TrimSpace(raw)
}

// PRPayload is the structured pull request artifact produced by the
// generation turn.
type PRPayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// ParsePRPayload recovers the JSON object from raw generation text and
// validates the required fields. Labels are optional and normalized to an
// empty slice so callers never see nil.
func ParsePRPayload(raw string) (PRPayload, error) {
	recovered := agent.RecoverJSON(raw)

	var payload PRPayload
	if err := json.Unmarshal([]byte(recovered), &payload); err != nil {
		return PRPayload{}, riveterrors.NewMalformedPayloadError(raw, err)
	}

	if strings.TrimSpace(payload.Title) == "" {
		return PRPayload{}, riveterrors.NewMissingFieldError("title", raw)
	}
	if strings.TrimSpace(payload.Body) == "" {
		return PRPayload{}, riveterrors.NewMissingFieldError("body", raw)
	}

	if payload.Labels == nil {
		payload.Labels = []string{}
	}

	return payload, nil
}
