package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"buddyai/internal/domain"
)

// The delimiter protocol is the only wire format crossing the chat boundary.
// Both markers must be reproduced byte for byte, double asterisks included;
// callers built against this protocol locate these exact literals. Nothing
// outside this file touches them.
const (
	payloadStart = "**ROADMAP_DATA_START**"
	payloadEnd   = "**ROADMAP_DATA_END**"
)

// EncodePayload serializes a roadmap into the delimited block embedded in a
// chat reply.
func EncodePayload(r *domain.Roadmap) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding roadmap payload: %w", err)
	}
	return payloadStart + "\n" + string(data) + "\n" + payloadEnd, nil
}

// DecodePayload extracts and parses the roadmap block from a reply. The
// second return is false when the reply carries no block at all; a malformed
// block returns an error so the caller can fall back to displaying the raw
// message.
func DecodePayload(message string) (*domain.Roadmap, bool, error) {
	start := strings.Index(message, payloadStart)
	if start < 0 {
		return nil, false, nil
	}
	end := strings.Index(message, payloadEnd)
	if end < 0 || end < start {
		return nil, true, fmt.Errorf("roadmap payload: missing end marker")
	}

	raw := strings.TrimSpace(message[start+len(payloadStart) : end])
	var r domain.Roadmap
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, true, fmt.Errorf("parsing roadmap payload: %w", err)
	}
	return &r, true, nil
}

// StripPayload removes the delimited block from a reply so it can be shown to
// the user.
func StripPayload(message string) string {
	start := strings.Index(message, payloadStart)
	if start < 0 {
		return message
	}
	end := strings.Index(message, payloadEnd)
	if end < 0 || end < start {
		return message
	}
	return message[:start] + message[end+len(payloadEnd):]
}
