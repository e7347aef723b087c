package chat

import (
	"encoding/json"

	"github.com/domuslabs/cashlens/internal/store"
)

// HistoryKey is the store key holding the serialized transcript.
const HistoryKey = "chat-history"

// DefaultMaxTurns caps the transcript length; the oldest turn is evicted
// first once the cap is exceeded.
const DefaultMaxTurns = 50

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation. Timestamp is display-formatted
// (e.g. "3:04 PM"), not a machine timestamp.
type Turn struct {
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Transcript is the bounded ordered sequence of turns. It is owned
// exclusively by the Widget; no other component mutates it.
type Transcript struct {
	turns []Turn
	max   int
}

// NewTranscript creates an empty transcript capped at max turns.
// Non-positive max falls back to DefaultMaxTurns.
func NewTranscript(max int) *Transcript {
	if max <= 0 {
		max = DefaultMaxTurns
	}
	return &Transcript{max: max}
}

// LoadTranscript reads the persisted transcript. Missing or malformed data
// yields an empty transcript. Turns beyond the cap are evicted oldest-first
// on load, so a cap lowered between sessions is honored.
func LoadTranscript(st store.Store, max int) *Transcript {
	t := NewTranscript(max)

	raw, ok := st.Read(HistoryKey)
	if !ok {
		return t
	}

	var turns []Turn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return t
	}
	if len(turns) > t.max {
		turns = turns[len(turns)-t.max:]
	}
	t.turns = turns
	return t
}

// Save persists the whole transcript. Failures are swallowed at the store
// boundary.
func (t *Transcript) Save(st store.Store) {
	data, err := json.Marshal(t.turns)
	if err != nil {
		return
	}
	st.Write(HistoryKey, string(data))
}

// Append adds a turn, evicting the oldest when over the cap.
func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
	if len(t.turns) > t.max {
		t.turns = t.turns[len(t.turns)-t.max:]
	}
}

// Turns returns a copy of the ordered turns.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int { return len(t.turns) }

// Clear empties the transcript.
func (t *Transcript) Clear() { t.turns = nil }
