package tracker

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/domuslabs/cashlens/internal/store"
)

func newTestTracker(st store.Store) *Tracker {
	tr := New(st, nil, []string{"home"})
	tr.now = func() time.Time {
		return time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC)
	}
	return tr
}

func TestRecordVisit(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	tr.RecordVisit("banks")
	tr.RecordVisit("banks")
	tr.RecordVisit("groceries")

	p := tr.Snapshot()
	if p.PageVisits["banks"] != 2 {
		t.Errorf("banks visits = %d, want 2", p.PageVisits["banks"])
	}
	if p.PageVisits["groceries"] != 1 {
		t.Errorf("groceries visits = %d, want 1", p.PageVisits["groceries"])
	}
	if p.LastPage != "groceries" {
		t.Errorf("lastPage = %q, want groceries", p.LastPage)
	}
	if p.PageEnterTime == 0 {
		t.Error("expected an open timing window after a visit")
	}
	if p.FirstSeen != "2024-01-03" || p.LastSeen != "2024-01-03" {
		t.Errorf("firstSeen/lastSeen = %q/%q, want 2024-01-03", p.FirstSeen, p.LastSeen)
	}
	if p.HourlyHits["14"] != 3 {
		t.Errorf("hourlyHits[14] = %d, want 3", p.HourlyHits["14"])
	}
}

func TestRecordLeaveAccumulatesOnce(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	enter := time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC)
	tr.now = func() time.Time { return enter }
	tr.RecordVisit("banks")

	tr.now = func() time.Time { return enter.Add(5 * time.Second) }
	tr.RecordLeave("banks")

	p := tr.Snapshot()
	if p.TimeSpent["banks"] != 5000 {
		t.Errorf("timeSpent = %d, want 5000", p.TimeSpent["banks"])
	}
	if p.PageEnterTime != 0 {
		t.Error("timing window should be closed after leave")
	}

	// Second leave with no open window is a no-op.
	tr.now = func() time.Time { return enter.Add(30 * time.Second) }
	tr.RecordLeave("banks")
	p = tr.Snapshot()
	if p.TimeSpent["banks"] != 5000 {
		t.Errorf("second leave mutated timeSpent: %d", p.TimeSpent["banks"])
	}
}

func TestRecordLeaveExcludesHome(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	tr.RecordVisit("home")
	tr.RecordLeave("home")
	tr.RecordLeave("")

	p := tr.Snapshot()
	if len(p.TimeSpent) != 0 {
		t.Errorf("timeSpent mutated for excluded page: %v", p.TimeSpent)
	}
	// The window opened by the home visit stays open; leave on an excluded
	// page never touches the record.
	if p.PageEnterTime == 0 {
		t.Error("leave on excluded page must not close the window")
	}
}

func TestTopPageExcludesHome(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	seedProfile(t, st, map[string]int{"banks": 3, "groceries": 5, "home": 100})

	top, ok := tr.TopPage()
	if !ok {
		t.Fatal("expected a top page")
	}
	if top != "groceries" {
		t.Errorf("TopPage = %q, want groceries", top)
	}
}

func TestTopPageTieBreakStable(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	seedProfile(t, st, map[string]int{"work": 4, "banks": 4, "utilities": 4})

	first, _ := tr.TopPage()
	for i := 0; i < 20; i++ {
		got, _ := tr.TopPage()
		if got != first {
			t.Fatalf("TopPage unstable: %q then %q", first, got)
		}
	}
	if first != "banks" {
		t.Errorf("tie should resolve to lexicographically smallest, got %q", first)
	}
}

func TestTopPageEmpty(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	if _, ok := tr.TopPage(); ok {
		t.Error("expected no top page on an empty profile")
	}

	tr.RecordVisit("home")
	if _, ok := tr.TopPage(); ok {
		t.Error("home alone must not produce a top page")
	}
}

func TestContextString(t *testing.T) {
	st := store.NewMemory()
	tr := newTestTracker(st)

	if got := tr.Context(); got != "" {
		t.Errorf("empty profile Context = %q, want empty", got)
	}

	tr.RecordVisit("banks")
	tr.RecordVisit("banks")
	tr.RecordVisit("banks")
	tr.RecordVisit("banks")

	got := tr.Context()
	for _, want := range []string{"banks (4x)", "1 total page views", "2024-01-03"} {
		if !strings.Contains(got, want) {
			t.Errorf("Context %q missing %q", got, want)
		}
	}
}

func TestInitSessionsAndGreeting(t *testing.T) {
	st := store.NewMemory()
	p := &capturingPresenter{}
	tr := New(st, p, []string{"home"})

	tr.Init()
	if p.greeting != "" || !p.hidden {
		t.Error("first session must suppress the greeting")
	}

	tr.Init()
	if p.greeting == "" {
		t.Error("second session should greet the returning visitor")
	}

	prof := tr.Snapshot()
	if prof.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", prof.Sessions)
	}
}

func TestCorruptProfileResets(t *testing.T) {
	st := store.NewMemory()
	st.Write(ProfileKey, "{not json")

	tr := newTestTracker(st)
	tr.RecordVisit("banks")

	p := tr.Snapshot()
	if p.PageVisits["banks"] != 1 {
		t.Errorf("visit not recorded after corrupt profile reset: %v", p.PageVisits)
	}
}

func TestStorageFailureKeepsWorking(t *testing.T) {
	st := store.NewMemory()
	st.FailWrites = true

	tr := newTestTracker(st)
	tr.RecordVisit("banks")
	tr.RecordLeave("banks")
	tr.RecordAction("export")
	// Nothing persisted, nothing panicked.
	if _, ok := st.Read(ProfileKey); ok {
		t.Error("failed writes must not be visible")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	p := Profile{
		PageVisits:    map[string]int{"banks": 4, "work": 1},
		TimeSpent:     map[string]int64{"banks": 90210},
		HourlyHits:    map[string]int{"14": 5},
		WeekdayHits:   map[string]int{"3": 5},
		LastPage:      "banks",
		PageEnterTime: 1704292200000,
		FirstSeen:     "2024-01-03",
		LastSeen:      "2024-02-01",
		Sessions:      7,
		Actions:       map[string]int{"export": 2},
	}

	data, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Profile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(p, back) {
		t.Errorf("round trip changed profile:\n got %+v\nwant %+v", back, p)
	}
}

func seedProfile(t *testing.T, st store.Store, visits map[string]int) {
	t.Helper()
	p := newProfile()
	p.PageVisits = visits
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("seed marshal: %v", err)
	}
	st.Write(ProfileKey, string(data))
}

type capturingPresenter struct {
	greeting string
	hidden   bool
	badges   map[string]int
}

func (c *capturingPresenter) RefreshBadges(v map[string]int) { c.badges = v }
func (c *capturingPresenter) ShowGreeting(msg string)        { c.greeting = msg }
func (c *capturingPresenter) HideGreeting()                  { c.hidden = true }
