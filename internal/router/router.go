// Package router drives single-page navigation: it resolves page
// identifiers against a static route table, swaps fetched content regions
// into the visible surface, and reports visit/leave events to the tracker.
package router

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/domuslabs/cashlens/internal/tracker"
)

// ErrUnknownRoute is returned when the target is not in the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Surface is the visible document the router renders into.
type Surface interface {
	SetContent(htmlContent string)
	SetTitle(title string)
	ScrollTop()
	// RedirectExternal performs a full navigation away from the app.
	RedirectExternal(url string)
}

// PageListener is notified after each successful fragment navigation.
// The voice-reminder collaborator hangs off this hook.
type PageListener interface {
	PageChanged(pageID string)
}

// Router holds the current-page state and performs navigations.
type Router struct {
	tracker  *tracker.Tracker
	surface  Surface
	listener PageListener
	routes   map[string]Route
	baseURL  string
	client   *http.Client

	mu      sync.Mutex
	current string
	seq     uint64
}

// New creates a Router starting on the home page. baseURL is the origin the
// fragment documents are served from. A nil client gets a default with a
// fetch timeout, so a hung fragment source cannot strand a navigation
// forever.
func New(tr *tracker.Tracker, surface Surface, baseURL string, client *http.Client) *Router {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Router{
		tracker: tr,
		surface: surface,
		routes:  DefaultRoutes(),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		current: "home",
	}
}

// SetPageListener installs the post-navigation hook.
func (r *Router) SetPageListener(l PageListener) {
	r.listener = l
}

// CurrentPage returns the identifier of the page currently shown.
func (r *Router) CurrentPage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate moves the app to target. Unknown targets render a not-found
// message and change nothing else — neither the current page nor the
// visitor profile. A navigation that loses the race to a newer one is
// discarded silently.
func (r *Router) Navigate(ctx context.Context, target string) error {
	r.mu.Lock()
	route, known := r.routes[target]
	if !known {
		r.mu.Unlock()
		r.surface.SetContent(notFoundHTML(target))
		return fmt.Errorf("%w: %q", ErrUnknownRoute, target)
	}

	// Dwell time on the page being left is captured before anything changes.
	leaving := r.current
	r.mu.Unlock()
	r.tracker.RecordLeave(leaving)

	if route.External != "" {
		r.tracker.RecordVisit(target)
		r.mu.Lock()
		r.current = target
		r.mu.Unlock()
		r.surface.RedirectExternal(route.External)
		return nil
	}

	r.mu.Lock()
	r.seq++
	mySeq := r.seq
	r.mu.Unlock()

	frag, err := FetchFragment(ctx, r.client, r.baseURL+"/"+route.Fragment)
	if err != nil {
		r.mu.Lock()
		stale := mySeq != r.seq
		r.mu.Unlock()
		if !stale {
			r.surface.SetContent(errorHTML(target))
		}
		return fmt.Errorf("navigating to %q: %w", target, err)
	}

	r.mu.Lock()
	if mySeq != r.seq {
		// A newer navigation started while this fetch was in flight.
		r.mu.Unlock()
		return nil
	}
	r.current = target
	r.mu.Unlock()

	r.surface.SetContent(frag.Content)
	if frag.Title != "" {
		r.surface.SetTitle(frag.Title)
	}
	r.surface.ScrollTop()
	r.tracker.RecordVisit(target)

	if r.listener != nil {
		r.listener.PageChanged(target)
	}
	return nil
}

func notFoundHTML(target string) string {
	return fmt.Sprintf(`<section class="page-error"><h2>Page not found</h2><p>There is no section called %q.</p></section>`,
		html.EscapeString(target))
}

func errorHTML(target string) string {
	return fmt.Sprintf(`<section class="page-error"><h2>Could not load this section</h2><p>Loading %q failed. Check your connection and try again.</p></section>`,
		html.EscapeString(target))
}
