package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/4tbox/toolbox/internal/bus"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostSubmission announces a form submission in the intake channel.
// Returns the message timestamp (ts).
func (p *Poster) PostSubmission(ctx context.Context, evt bus.SubmissionEvent) (string, error) {
	text := formatSubmissionMessage(evt)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
			{
				"type": "context",
				"elements": []map[string]any{
					{
						"type": "mrkdwn",
						"text": "ID: `" + evt.ID + "`",
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		TS    string `json:"ts"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return "", fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return "", fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("posted submission to slack", "ts", slackResp.TS, "kind", evt.Kind, "id", evt.ID)
	return slackResp.TS, nil
}

func formatSubmissionMessage(evt bus.SubmissionEvent) string {
	var sb strings.Builder

	switch evt.Kind {
	case "tool_request":
		sb.WriteString("*New tool request*\n")
	case "contact":
		sb.WriteString("*New contact message*\n")
	default:
		fmt.Fprintf(&sb, "*New %s submission*\n", evt.Kind)
	}

	if evt.Email != "" {
		fmt.Fprintf(&sb, "*From:* %s\n", evt.Email)
	} else {
		sb.WriteString("*From:* _anonymous_\n")
	}
	if !evt.SubmittedAt.IsZero() {
		fmt.Fprintf(&sb, "*At:* %s\n", evt.SubmittedAt.UTC().Format(time.RFC3339))
	}
	sb.WriteString("\n")
	sb.WriteString(evt.Summary)

	return sb.String()
}
