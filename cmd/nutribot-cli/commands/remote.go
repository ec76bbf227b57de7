package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

const sessionHeader = "X-Session-ID"

// apiClient talks to a running nutribot API and keeps its session id.
type apiClient struct {
	baseURL   string
	http      *http.Client
	sessionID string
}

func newAPIClient(baseURL, sessionID string) *apiClient {
	return &apiClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 30 * time.Second},
		sessionID: sessionID,
	}
}

type chatReply struct {
	dialogue.Envelope
	SessionID string `json:"sessionId"`
	Error     string `json:"error,omitempty"`
}

func (c *apiClient) Chat(ctx context.Context, message string) (dialogue.Envelope, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return dialogue.Envelope{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return dialogue.Envelope{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return dialogue.Envelope{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var reply chatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return dialogue.Envelope{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if reply.Response != "" {
			return reply.Envelope, nil
		}
		return dialogue.Envelope{}, fmt.Errorf("api error (status %d): %s", resp.StatusCode, reply.Error)
	}

	if id := resp.Header.Get(sessionHeader); id != "" {
		c.sessionID = id
	} else if reply.SessionID != "" {
		c.sessionID = reply.SessionID
	}
	return reply.Envelope, nil
}
