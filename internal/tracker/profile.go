package tracker

import (
	"encoding/json"

	"github.com/domuslabs/cashlens/internal/store"
)

// ProfileKey is the store key holding the serialized visitor profile.
const ProfileKey = "behavior-profile"

// Profile is the single persisted record of one profile's usage statistics.
// It accumulates across sessions and is only reset by clearing storage.
type Profile struct {
	PageVisits    map[string]int   `json:"pageVisits"`
	TimeSpent     map[string]int64 `json:"timeSpent"`
	HourlyHits    map[string]int   `json:"hourlyHits"`
	WeekdayHits   map[string]int   `json:"weekdayHits"`
	LastPage      string           `json:"lastPage,omitempty"`
	PageEnterTime int64            `json:"pageEnterTime,omitempty"`
	FirstSeen     string           `json:"firstSeen,omitempty"`
	LastSeen      string           `json:"lastSeen,omitempty"`
	Sessions      int              `json:"sessions"`
	Actions       map[string]int   `json:"actions"`
}

// newProfile returns an empty profile with all maps allocated.
func newProfile() *Profile {
	return &Profile{
		PageVisits:  make(map[string]int),
		TimeSpent:   make(map[string]int64),
		HourlyHits:  make(map[string]int),
		WeekdayHits: make(map[string]int),
		Actions:     make(map[string]int),
	}
}

// loadProfile reads the profile from the store. A missing, unreadable, or
// malformed record yields a fresh empty profile; corruption is never
// surfaced to the caller.
func loadProfile(st store.Store) *Profile {
	raw, ok := st.Read(ProfileKey)
	if !ok {
		return newProfile()
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return newProfile()
	}
	if p.PageVisits == nil {
		p.PageVisits = make(map[string]int)
	}
	if p.TimeSpent == nil {
		p.TimeSpent = make(map[string]int64)
	}
	if p.HourlyHits == nil {
		p.HourlyHits = make(map[string]int)
	}
	if p.WeekdayHits == nil {
		p.WeekdayHits = make(map[string]int)
	}
	if p.Actions == nil {
		p.Actions = make(map[string]int)
	}
	return &p
}

// saveProfile writes the whole profile back to the store. Write failures are
// swallowed at the store boundary; the session continues on in-memory state.
func saveProfile(st store.Store, p *Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	st.Write(ProfileKey, string(data))
}
