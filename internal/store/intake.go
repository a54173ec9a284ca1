package store

import (
	"context"
	"fmt"

	"github.com/4tbox/toolbox/internal/intake"
)

// InsertToolRequest stores a tool request submitted through the site.
func (s *Store) InsertToolRequest(ctx context.Context, r intake.ToolRequest) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tool_requests (id, tool_name, description, category, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.ToolName, r.Description, r.Category, r.Email, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool request: %w", err)
	}
	return nil
}

// InsertContactMessage stores a contact form message.
func (s *Store) InsertContactMessage(ctx context.Context, m intake.ContactMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListToolRequests returns up to limit tool requests, newest first.
func (s *Store) ListToolRequests(ctx context.Context, limit int) ([]intake.ToolRequest, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, tool_name, description, category, email, created_at
		FROM tool_requests
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tool requests: %w", err)
	}
	defer rows.Close()

	var out []intake.ToolRequest
	for rows.Next() {
		var r intake.ToolRequest
		if err := rows.Scan(&r.ID, &r.ToolName, &r.Description, &r.Category, &r.Email, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tool request: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tool requests: %w", err)
	}
	return out, nil
}
