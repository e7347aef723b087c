// Package chat implements the assistant panel: a bounded persisted
// transcript, the send state machine, and the HTTP protocol to the remote
// completion service, with tracker-derived context injected for
// personalization.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/domuslabs/cashlens/internal/store"
	"github.com/domuslabs/cashlens/internal/tracker"
)

// ErrBusy is returned when Send is called while a reply is still pending.
// The send control is disabled during that window; no second request is
// enqueued.
var ErrBusy = errors.New("a reply is still pending")

// DefaultHistoryLimit bounds how many prior turns accompany each request.
const DefaultHistoryLimit = 8

// Fallback assistant messages for the error taxonomy. The unreachable
// message is distinct from the server-error one so the user can tell a dead
// backend from a failing one.
const (
	msgUnreachable = "I can't reach the CashLens backend right now. Make sure the server is running, then try again."
	msgEmptyReply  = "The assistant sent back an empty response. Please try rephrasing your question."
	msgRejected    = "Your message could not be processed."
)

// View receives the widget's presentation callbacks. Headless callers use
// NopView.
type View interface {
	RenderTranscript(htmlContent string)
	SetSendEnabled(enabled bool)
	ShowSuggestions(visible bool)
	FocusInput()
	ScrollToBottom()
}

// NopView discards all presentation callbacks.
type NopView struct{}

func (NopView) RenderTranscript(string) {}
func (NopView) SetSendEnabled(bool)     {}
func (NopView) ShowSuggestions(bool)    {}
func (NopView) FocusInput()             {}
func (NopView) ScrollToBottom()         {}

// Widget is the chat assistant panel. Panel visibility (closed/open) and
// the awaiting-reply flag are independent: toggling the panel never
// interrupts an in-flight request.
type Widget struct {
	tracker      *tracker.Tracker
	client       *Client
	store        store.Store
	view         View
	historyLimit int

	mu         sync.Mutex
	transcript *Transcript
	open       bool
	pending    bool
	now        func() time.Time
}

// New creates a Widget and loads the persisted transcript. A nil view is
// replaced with NopView. maxTurns and historyLimit fall back to their
// defaults when non-positive.
func New(tr *tracker.Tracker, client *Client, st store.Store, view View, maxTurns, historyLimit int) *Widget {
	if view == nil {
		view = NopView{}
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Widget{
		tracker:      tr,
		client:       client,
		store:        st,
		view:         view,
		historyLimit: historyLimit,
		transcript:   LoadTranscript(st, maxTurns),
		now:          time.Now,
	}
}

// Toggle flips panel visibility. Opening focuses the input, scrolls the
// transcript to the bottom, and hides the suggestion chips once a
// conversation exists.
func (w *Widget) Toggle() {
	w.mu.Lock()
	w.open = !w.open
	opened := w.open
	empty := w.transcript.Len() == 0
	w.mu.Unlock()

	if opened {
		w.view.FocusInput()
		w.view.ScrollToBottom()
		w.view.ShowSuggestions(empty)
	}
}

// IsOpen reports panel visibility.
func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Send relays one user message to the chat API and appends the reply (or a
// taxonomy-appropriate fallback) to the transcript. Blank input is ignored.
// ErrBusy is returned while a previous reply is pending.
func (w *Widget) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return ErrBusy
	}
	history := w.historyLocked()
	w.transcript.Append(Turn{Role: RoleUser, Text: text, Timestamp: w.stamp()})
	w.transcript.Save(w.store)
	w.pending = true
	w.refreshLocked()
	w.mu.Unlock()

	outgoing := text
	if userContext := w.tracker.Context(); userContext != "" {
		outgoing += "\n\n" + userContext
	}

	reply, err := w.client.Send(ctx, outgoing, history)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.transcript.Append(Turn{Role: RoleAssistant, Text: w.resolveReply(reply, err), Timestamp: w.stamp()})
	w.transcript.Save(w.store)
	w.pending = false
	w.refreshLocked()
	return nil
}

// resolveReply maps the client outcome onto the assistant message to show.
func (w *Widget) resolveReply(reply string, err error) string {
	if err == nil {
		if strings.TrimSpace(reply) == "" {
			return msgEmptyReply
		}
		return reply
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return msgUnreachable
	}
	if apiErr.Status >= 400 && apiErr.Status < 500 {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return msgRejected
	}
	return fmt.Sprintf("The server hit an error (status %d). Please try again in a moment.", apiErr.Status)
}

// ClearHistory empties the transcript, deletes the persisted copy, and
// brings the suggestion chips back.
func (w *Widget) ClearHistory() {
	w.mu.Lock()
	w.transcript.Clear()
	w.store.Remove(HistoryKey)
	w.refreshLocked()
	w.mu.Unlock()

	w.view.ShowSuggestions(true)
}

// Transcript returns a copy of the current turns.
func (w *Widget) Transcript() []Turn {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transcript.Turns()
}

// historyLocked returns the last historyLimit turns before the message
// being sent, in wire format.
func (w *Widget) historyLocked() []HistoryMessage {
	turns := w.transcript.Turns()
	if len(turns) > w.historyLimit {
		turns = turns[len(turns)-w.historyLimit:]
	}
	history := make([]HistoryMessage, 0, len(turns))
	for _, turn := range turns {
		history = append(history, HistoryMessage{Role: string(turn.Role), Content: turn.Text})
	}
	return history
}

func (w *Widget) refreshLocked() {
	w.view.RenderTranscript(RenderTranscript(w.transcript.Turns(), w.pending))
	w.view.SetSendEnabled(!w.pending)
	w.view.ScrollToBottom()
}

func (w *Widget) stamp() string {
	return w.now().Format("3:04 PM")
}
