// Package tracker accumulates per-profile usage statistics and derives the
// personalization facts consumed by the router and the chat widget.
package tracker

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/domuslabs/cashlens/internal/store"
)

// Presenter receives the tracker's UI side effects. Implementations render
// visit-count badges and the returning-visitor greeting; headless callers
// use NopPresenter.
type Presenter interface {
	RefreshBadges(visits map[string]int)
	ShowGreeting(message string)
	HideGreeting()
}

// NopPresenter discards all presentation callbacks.
type NopPresenter struct{}

func (NopPresenter) RefreshBadges(map[string]int) {}
func (NopPresenter) ShowGreeting(string)          {}
func (NopPresenter) HideGreeting()                {}

// Tracker records page visits, dwell time, and discrete actions into a
// persisted Profile. Every mutation is a synchronous read-modify-write of
// the whole record; there is no suspension between the read and the write.
type Tracker struct {
	store     store.Store
	presenter Presenter
	exclude   []string
	now       func() time.Time
}

// New creates a Tracker. exclude lists glob patterns for page identifiers
// that are left out of time-tracking and top-page ranking; the default
// landing page is conventionally excluded. A nil presenter is replaced
// with NopPresenter.
func New(st store.Store, presenter Presenter, exclude []string) *Tracker {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	return &Tracker{
		store:     st,
		presenter: presenter,
		exclude:   exclude,
		now:       time.Now,
	}
}

// Init starts a session: it bumps the session counter, stamps the
// first-seen/last-seen dates, and refreshes the greeting and badges.
func (t *Tracker) Init() {
	now := t.now()
	p := loadProfile(t.store)

	p.Sessions++
	today := now.Format("2006-01-02")
	if p.FirstSeen == "" {
		p.FirstSeen = today
	}
	p.LastSeen = today

	saveProfile(t.store, p)

	t.updateGreeting(p)
	t.presenter.RefreshBadges(p.PageVisits)
}

// RecordVisit counts a visit to pageID and opens a timing window for it.
// Each call is an independent increment; there is no dedup.
func (t *Tracker) RecordVisit(pageID string) {
	now := t.now()
	p := loadProfile(t.store)

	p.PageVisits[pageID]++
	p.LastPage = pageID
	p.PageEnterTime = now.UnixMilli()
	p.HourlyHits[strconv.Itoa(now.Hour())]++
	p.WeekdayHits[strconv.Itoa(int(now.Weekday()))]++

	today := now.Format("2006-01-02")
	if p.FirstSeen == "" {
		p.FirstSeen = today
	}
	p.LastSeen = today

	saveProfile(t.store, p)
	t.presenter.RefreshBadges(p.PageVisits)
}

// RecordLeave closes the open timing window for pageID, adding the elapsed
// time to its dwell total. It is a no-op for excluded pages, for an empty
// pageID, and when no window is open, so calling it twice in a row applies
// the delta only once.
func (t *Tracker) RecordLeave(pageID string) {
	if pageID == "" || t.isExcluded(pageID) {
		return
	}

	p := loadProfile(t.store)
	if p.PageEnterTime == 0 {
		return
	}

	delta := t.now().UnixMilli() - p.PageEnterTime
	if delta > 0 {
		p.TimeSpent[pageID] += delta
	}
	p.PageEnterTime = 0

	saveProfile(t.store, p)
}

// RecordAction counts a discrete named action.
func (t *Tracker) RecordAction(name string) {
	p := loadProfile(t.store)
	p.Actions[name]++
	saveProfile(t.store, p)
}

// TopPage returns the most-visited non-excluded page. ok is false when no
// such page has been visited yet. Ties resolve to the lexicographically
// smallest page identifier, so the result is stable across calls.
func (t *Tracker) TopPage() (page string, ok bool) {
	p := loadProfile(t.store)
	return topPage(p, t.exclude)
}

func topPage(p *Profile, exclude []string) (string, bool) {
	pages := make([]string, 0, len(p.PageVisits))
	for page := range p.PageVisits {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	var best string
	bestCount := 0
	for _, page := range pages {
		if matchesAny(exclude, page) {
			continue
		}
		if count := p.PageVisits[page]; count > bestCount {
			best, bestCount = page, count
		}
	}
	return best, bestCount > 0
}

// Context returns a short prose summary of the profile for injection into
// outgoing chat requests, or "" when there is nothing to summarize yet.
func (t *Tracker) Context() string {
	p := loadProfile(t.store)

	top, ok := topPage(p, t.exclude)
	if !ok {
		return ""
	}

	return fmt.Sprintf("[User context: most visited section: %s (%dx), %d total page views, active since %s]",
		top, p.PageVisits[top], len(p.PageVisits), p.FirstSeen)
}

// UpdateGreeting recomputes the greeting from the persisted profile.
// Only returning visitors are greeted; first-time visitors never see one.
func (t *Tracker) UpdateGreeting() {
	t.updateGreeting(loadProfile(t.store))
}

func (t *Tracker) updateGreeting(p *Profile) {
	if p.Sessions >= 2 {
		t.presenter.ShowGreeting(fmt.Sprintf("Welcome back! This is visit #%d.", p.Sessions))
	} else {
		t.presenter.HideGreeting()
	}
}

// Snapshot returns a copy of the current persisted profile.
func (t *Tracker) Snapshot() Profile {
	p := loadProfile(t.store)
	return *p
}

func (t *Tracker) isExcluded(pageID string) bool {
	return matchesAny(t.exclude, pageID)
}

func matchesAny(patterns []string, pageID string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, pageID); err == nil && ok {
			return true
		}
	}
	return false
}
