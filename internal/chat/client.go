package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HistoryMessage is one prior turn sent to the chat API for context.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string           `json:"message"`
	History []HistoryMessage `json:"history,omitempty"`
}

type chatEnvelope struct {
	Success bool      `json:"success"`
	Data    *chatData `json:"data"`
	Error   string    `json:"error"`
}

type chatData struct {
	Reply string `json:"reply"`
}

// APIError is a chat API response outside the success envelope. Status 400
// carries a server-supplied validation message; anything else is a server
// failure the caller surfaces with the status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("chat API status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("chat API status %d", e.Status)
}

// Client talks to the remote chat completion service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a chat API client. A zero timeout gets a default, so a
// hung backend cannot hold the widget in awaiting-reply forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Send posts one message plus prior history and returns the reply text.
// Network-level failures return the transport error unwrapped into an
// *APIError, so callers can tell "unreachable" apart from "rejected".
func (c *Client) Send(ctx context.Context, message string, history []HistoryMessage) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message, History: history})
	if err != nil {
		return "", fmt.Errorf("marshalling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting chat message: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}

	var env chatEnvelope
	if unmarshalErr := json.Unmarshal(respBody, &env); unmarshalErr != nil {
		env = chatEnvelope{}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	if !env.Success || env.Data == nil {
		return "", &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	return env.Data.Reply, nil
}
