// Package toolbar keeps the browser-action state of every tracked tab.
package toolbar

import (
	"recap/pkg/domain"
	"sync"
)

//nolint: gochecknoglobals
var (
	colorIcons = domain.IconSet{"19": "assets/images/icon-19.png", "38": "assets/images/icon-38.png"}
	greyIcons  = domain.IconSet{"19": "assets/images/grey-19.png", "38": "assets/images/grey-38.png"}
)

func state(title string, icons domain.IconSet) domain.ToolbarState {
	// callers get their own map
	cp := make(domain.IconSet, len(icons))
	for k, v := range icons {
		cp[k] = v
	}

	return domain.ToolbarState{Title: title, Icons: cp}
}

// Disabled is shown everywhere while the recap_disabled option is on.
func Disabled() domain.ToolbarState { return state("RECAP is temporarily disabled", greyIcons) }

// NotPacer is shown on pages outside PACER.
func NotPacer() domain.ToolbarState { return state("RECAP: Not at a PACER site", greyIcons) }

// LoggedOut is shown on PACER pages without a validated session.
func LoggedOut() domain.ToolbarState {
	return state("Not logged in to PACER. RECAP is inactive.", greyIcons)
}

// Active is shown on PACER pages with a validated session.
func Active() domain.ToolbarState { return state("Logged in to PACER. RECAP is active.", colorIcons) }

// Unsupported is shown on appellate court pages.
func Unsupported() domain.ToolbarState {
	return state("RECAP does not yet support appellate courts.", greyIcons)
}

// Select picks the state for a page. The checks run in order: disabled,
// not PACER, appellate court, logged out.
func Select(opts domain.Options, page domain.Page, login domain.LoginState) domain.ToolbarState {
	switch {
	case opts.RecapDisabled:
		return Disabled()
	case !page.Kind.IsPacer():
		return NotPacer()
	case page.Appellate:
		return Unsupported()
	case !login.LoggedIn():
		return LoggedOut()
	default:
		return Active()
	}
}

// Registry stores the toolbar state per tab. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tabs  map[domain.TabID]domain.ToolbarState
	pages map[domain.TabID]domain.Page
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tabs:  make(map[domain.TabID]domain.ToolbarState),
		pages: make(map[domain.TabID]domain.Page),
	}
}

// Set records the page last seen in tab and the state its toolbar shows.
func (r *Registry) Set(tab domain.TabID, page domain.Page, st domain.ToolbarState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tabs[tab] = st
	r.pages[tab] = page
}

// Get returns the toolbar state of tab.
func (r *Registry) Get(tab domain.TabID) (domain.ToolbarState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.tabs[tab]

	return st, ok
}

// Remove forgets tab. It reports whether the tab was known.
func (r *Registry) Remove(tab domain.TabID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tabs[tab]
	delete(r.tabs, tab)
	delete(r.pages, tab)

	return ok
}

// Refresh recomputes the state of every tab showing a PACER page and returns
// how many tabs were updated.
func (r *Registry) Refresh(opts domain.Options, login domain.LoginState) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for tab, page := range r.pages {
		if !page.Kind.IsPacer() {
			continue
		}
		r.tabs[tab] = Select(opts, page, login)
		n++
	}

	return n
}

// Len returns the number of tracked tabs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tabs)
}
