// Package intake accepts the site's form submissions: tool requests and
// contact messages. Submissions are validated, stored, announced on the bus,
// and relayed to Slack by a bus subscriber.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/4tbox/toolbox/internal/bus"
)

// Repository persists submissions.
type Repository interface {
	InsertToolRequest(ctx context.Context, r ToolRequest) error
	InsertContactMessage(ctx context.Context, m ContactMessage) error
	ListToolRequests(ctx context.Context, limit int) ([]ToolRequest, error)
}

// Publisher announces events.
type Publisher interface {
	Publish(subject string, data any) error
}

// Notifier relays submission events to people.
type Notifier interface {
	PostSubmission(ctx context.Context, evt bus.SubmissionEvent) (string, error)
}

// Recorder observes submission outcomes.
type Recorder interface {
	ObserveSubmission(kind string, err error)
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, rule := range e.Fields {
		parts = append(parts, f+": "+rule)
	}
	return "invalid submission: " + strings.Join(parts, ", ")
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
	notifyTimeout    = 15 * time.Second
)

// Service runs the intake pipeline. Publisher, Notifier and Recorder are optional.
type Service struct {
	repo     Repository
	pub      Publisher
	notifier Notifier
	recorder Recorder
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

func New(repo Repository, pub Publisher, notifier Notifier, recorder Recorder, logger *slog.Logger) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Service{
		repo:     repo,
		pub:      pub,
		notifier: notifier,
		recorder: recorder,
		validate: v,
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitToolRequest validates and stores a tool request, then publishes it.
func (s *Service) SubmitToolRequest(ctx context.Context, r ToolRequest) (ToolRequest, error) {
	r.ToolName = strings.TrimSpace(r.ToolName)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Email = strings.TrimSpace(r.Email)

	if err := s.check(r); err != nil {
		return ToolRequest{}, err
	}
	r.ID = uuid.New()
	r.CreatedAt = s.now().UTC()

	err := s.repo.InsertToolRequest(ctx, r)
	s.observe(KindToolRequest, err)
	if err != nil {
		return ToolRequest{}, fmt.Errorf("store tool request: %w", err)
	}
	s.logger.Info("tool request stored", "id", r.ID, "tool", r.ToolName)

	s.publish(bus.SubjectToolRequest, bus.SubmissionEvent{
		ID:          r.ID.String(),
		Kind:        KindToolRequest,
		Email:       r.Email,
		Summary:     toolRequestSummary(r),
		SubmittedAt: r.CreatedAt,
	})
	return r, nil
}

// SubmitContact validates and stores a contact message, then publishes it.
func (s *Service) SubmitContact(ctx context.Context, m ContactMessage) (ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)

	if err := s.check(m); err != nil {
		return ContactMessage{}, err
	}
	m.ID = uuid.New()
	m.CreatedAt = s.now().UTC()

	err := s.repo.InsertContactMessage(ctx, m)
	s.observe(KindContact, err)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("store contact message: %w", err)
	}
	s.logger.Info("contact message stored", "id", m.ID)

	s.publish(bus.SubjectContact, bus.SubmissionEvent{
		ID:          m.ID.String(),
		Kind:        KindContact,
		Email:       m.Email,
		Summary:     contactSummary(m),
		SubmittedAt: m.CreatedAt,
	})
	return m, nil
}

// RecentToolRequests returns the newest tool requests first.
func (s *Service) RecentToolRequests(ctx context.Context, limit int) ([]ToolRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	reqs, err := s.repo.ListToolRequests(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list tool requests: %w", err)
	}
	return reqs, nil
}

// HandleSubmitted is the bus handler for submission events. It relays the
// event to the notifier.
func (s *Service) HandleSubmitted(subject string, data []byte) {
	if s.notifier == nil {
		return
	}

	var evt bus.SubmissionEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		s.logger.Error("failed to parse submission event", "subject", subject, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if _, err := s.notifier.PostSubmission(ctx, evt); err != nil {
		s.logger.Error("submission notification failed", "id", evt.ID, "kind", evt.Kind, "error", err)
	}
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

func (s *Service) publish(subject string, evt bus.SubmissionEvent) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(subject, evt); err != nil {
		s.logger.Warn("failed to publish submission", "subject", subject, "id", evt.ID, "error", err)
	}
}

func (s *Service) observe(kind string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveSubmission(kind, err)
	}
}

func toolRequestSummary(r ToolRequest) string {
	var sb strings.Builder
	sb.WriteString(r.ToolName)
	if r.Category != "" {
		sb.WriteString(" [" + r.Category + "]")
	}
	sb.WriteString("\n")
	sb.WriteString(truncate(r.Description, 500))
	return sb.String()
}

func contactSummary(m ContactMessage) string {
	head := m.Name
	if m.Subject != "" {
		head += ": " + m.Subject
	}
	return head + "\n" + truncate(m.Message, 500)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
