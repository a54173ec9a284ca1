package intake

import (
	"time"

	"github.com/google/uuid"
)

// Submission kinds, also used as metric and event labels.
const (
	KindToolRequest = "tool_request"
	KindContact     = "contact"
)

// ToolRequest is a visitor's suggestion for a new tool.
type ToolRequest struct {
	ID          uuid.UUID `json:"id"`
	ToolName    string    `json:"tool_name" validate:"required,max=120"`
	Description string    `json:"description" validate:"required,max=4000"`
	Category    string    `json:"category,omitempty" validate:"omitempty,max=60"`
	Email       string    `json:"email,omitempty" validate:"omitempty,email,max=254"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=120"`
	Email     string    `json:"email" validate:"required,email,max=254"`
	Subject   string    `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message   string    `json:"message" validate:"required,max=8000"`
	CreatedAt time.Time `json:"created_at"`
}
