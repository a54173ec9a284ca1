package bus

import "time"

// SubmissionEvent announces a stored intake submission. Summary carries a
// short human-readable description for notification sinks.
type SubmissionEvent struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Email       string    `json:"email,omitempty"`
	Summary     string    `json:"summary"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RegistrationEvent is published once when the server starts.
type RegistrationEvent struct {
	Timestamp string `json:"timestamp"`
	Port      int    `json:"port"`
	Version   string `json:"version"`
}
