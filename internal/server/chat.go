package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/domuslabs/cashlens/internal/advisor"
)

// maxChatMessageLen caps incoming message length after sanitization.
const maxChatMessageLen = 2000

// chatRequest is the incoming /chat body.
type chatRequest struct {
	Message string        `json:"message"`
	History []chatHistory `json:"history,omitempty"`
}

type chatHistory struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// envelope is the uniform response shape: exactly one of Data or Error is
// meaningful, discriminated by Success.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := sanitizeText(req.Message, maxChatMessageLen)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Missing or empty 'message'")
		return
	}

	if s.advisor == nil {
		writeError(w, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	history := make([]advisor.Message, 0, len(req.History))
	for _, h := range req.History {
		history = append(history, advisor.Message{Role: h.Role, Content: h.Content})
	}

	reply, err := s.advisor.Reply(r.Context(), message, history)
	if err != nil {
		log.Printf("server: advisor reply: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeOK(w, map[string]string{"reply": reply, "message": message})
}

// sanitizeText trims, strips control characters, and caps the length of
// user-supplied text.
func sanitizeText(text string, maxLen int) string {
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	text = strings.TrimSpace(text)
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text
}
