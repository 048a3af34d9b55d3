package tracker

import (
	"context"
	"recap/pkg/domain"
)

// Navigation is a page load reported by a browser tab.
type Navigation struct {
	TabID    domain.TabID
	URL      string
	Referrer string
	// HTML is the loaded page, when the client sends it. Attachment menus and
	// single document pages can only be told apart by their content.
	HTML string
}

// CookieChange is a cookie update for one domain. Cookies is the full Cookie
// header value for that domain after the change.
type CookieChange struct {
	Domain  string
	Cookies string
}

// Upload reports that the client sent a PACER page to the archive.
type Upload struct {
	TabID       domain.TabID
	Court       string
	Description string
}

//go:generate mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *
type Tracker interface {
	HandleNavigation(ctx context.Context, nav Navigation) (*domain.Page, error)
	HandleCookieChange(ctx context.Context, change CookieChange) (domain.LoginState, error)
	ReportUpload(ctx context.Context, upload Upload) error
	Toolbar(ctx context.Context, tabID domain.TabID) (domain.ToolbarState, error)
	CloseTab(ctx context.Context, tabID domain.TabID) error
}
