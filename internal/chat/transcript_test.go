package chat

import (
	"fmt"
	"testing"

	"github.com/domuslabs/cashlens/internal/store"
)

func TestTranscriptCapFIFO(t *testing.T) {
	tr := NewTranscript(50)
	for i := 1; i <= 60; i++ {
		tr.Append(Turn{Role: RoleUser, Text: fmt.Sprintf("turn %d", i)})
	}

	if tr.Len() != 50 {
		t.Fatalf("len = %d, want 50", tr.Len())
	}
	turns := tr.Turns()
	if turns[0].Text != "turn 11" {
		t.Errorf("oldest surviving turn = %q, want turn 11", turns[0].Text)
	}
	if turns[49].Text != "turn 60" {
		t.Errorf("newest turn = %q, want turn 60", turns[49].Text)
	}
}

func TestTranscriptPersistRoundTrip(t *testing.T) {
	st := store.NewMemory()

	tr := NewTranscript(50)
	tr.Append(Turn{Role: RoleUser, Text: "how much did I spend?", Timestamp: "3:04 PM"})
	tr.Append(Turn{Role: RoleAssistant, Text: "About $1,200 this month.", Timestamp: "3:04 PM"})
	tr.Save(st)

	loaded := LoadTranscript(st, 50)
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d turns, want 2", loaded.Len())
	}
	got := loaded.Turns()
	want := tr.Turns()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadTranscriptMalformed(t *testing.T) {
	st := store.NewMemory()
	st.Write(HistoryKey, "not json at all")

	tr := LoadTranscript(st, 50)
	if tr.Len() != 0 {
		t.Errorf("malformed history should load as empty, got %d turns", tr.Len())
	}
}

func TestLoadTranscriptTrimsToCap(t *testing.T) {
	st := store.NewMemory()

	tr := NewTranscript(50)
	for i := 1; i <= 20; i++ {
		tr.Append(Turn{Role: RoleUser, Text: fmt.Sprintf("turn %d", i)})
	}
	tr.Save(st)

	loaded := LoadTranscript(st, 5)
	if loaded.Len() != 5 {
		t.Fatalf("len = %d, want 5", loaded.Len())
	}
	if loaded.Turns()[0].Text != "turn 16" {
		t.Errorf("oldest turn after trim = %q, want turn 16", loaded.Turns()[0].Text)
	}
}
