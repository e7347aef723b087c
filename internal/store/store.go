// Package store provides the durable key-value storage used by the tracker
// and the chat widget. All implementations swallow storage failures: a failed
// write returns false, a failed or unparseable read reports the key as
// absent, and neither ever surfaces an error to the caller. Components keep
// working on in-memory state for the rest of the session when storage is
// unavailable.
package store

// Store is a string key-value store scoped to one profile/session.
type Store interface {
	// Read returns the value for key, or ok=false if the key is absent or
	// the underlying storage failed.
	Read(key string) (value string, ok bool)

	// Write stores value under key. It reports whether the write was
	// persisted; callers may ignore the result.
	Write(key, value string) bool

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
