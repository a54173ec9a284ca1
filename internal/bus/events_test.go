package bus

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSubmissionEventParsing(t *testing.T) {
	raw := `{
		"id": "0b5c3f0e-0000-4000-8000-000000000001",
		"kind": "tool_request",
		"email": "ana@example.com",
		"summary": "Markdown to HTML converter",
		"submitted_at": "2026-03-01T10:00:00Z"
	}`

	var evt SubmissionEvent
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatalf("failed to parse SubmissionEvent: %v", err)
	}

	if evt.Kind != "tool_request" {
		t.Errorf("expected kind 'tool_request', got '%s'", evt.Kind)
	}
	if evt.Email != "ana@example.com" {
		t.Errorf("expected email, got '%s'", evt.Email)
	}
	if evt.Summary != "Markdown to HTML converter" {
		t.Errorf("expected summary, got '%s'", evt.Summary)
	}
	if !evt.SubmittedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected submitted_at %v", evt.SubmittedAt)
	}
}

func TestSubmissionEventOmitsEmptyEmail(t *testing.T) {
	data, err := json.Marshal(SubmissionEvent{ID: "x", Kind: "contact", Summary: "hi"})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := m["email"]; ok {
		t.Error("expected email to be omitted")
	}
}
