package store

import (
	"testing"

	"github.com/domuslabs/cashlens/internal/db"
)

func TestSQLiteRoundTrip(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	s := NewSQLite(database)

	if _, ok := s.Read("missing"); ok {
		t.Error("expected absent key to report ok=false")
	}

	if !s.Write("profile", `{"sessions":1}`) {
		t.Fatal("Write returned false")
	}

	got, ok := s.Read("profile")
	if !ok {
		t.Fatal("expected key to be present after write")
	}
	if got != `{"sessions":1}` {
		t.Errorf("Read = %q, want %q", got, `{"sessions":1}`)
	}

	// Overwrite replaces the value.
	s.Write("profile", `{"sessions":2}`)
	got, _ = s.Read("profile")
	if got != `{"sessions":2}` {
		t.Errorf("after overwrite Read = %q, want %q", got, `{"sessions":2}`)
	}

	s.Remove("profile")
	if _, ok := s.Read("profile"); ok {
		t.Error("expected key to be absent after Remove")
	}

	// Removing an absent key must not panic.
	s.Remove("profile")
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = true

	if m.Write("k", "v") {
		t.Error("expected Write to report failure")
	}
	if _, ok := m.Read("k"); ok {
		t.Error("failed write must not be visible")
	}
}
