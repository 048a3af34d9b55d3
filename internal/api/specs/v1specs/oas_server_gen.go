// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// ChangeCookies implements changeCookies operation.
	//
	// Report the cookies of a domain after a change.
	//
	// POST /cookies
	ChangeCookies(ctx context.Context, req *CookieChange) (*LoginStatus, error)
	// Classify implements classify operation.
	//
	// Classify a URL and optional page HTML.
	//
	// POST /classify
	Classify(ctx context.Context, req *PageRequest) (*Page, error)
	// CloseTab implements closeTab operation.
	//
	// Forget a closed tab.
	//
	// DELETE /tabs/{id}
	CloseTab(ctx context.Context, params CloseTabParams) error
	// DismissNotification implements dismissNotification operation.
	//
	// Hide a notification.
	//
	// DELETE /notifications/{id}
	DismissNotification(ctx context.Context, params DismissNotificationParams) error
	// GetCourt implements getCourt operation.
	//
	// Describe one court.
	//
	// GET /courts/{code}
	GetCourt(ctx context.Context, params GetCourtParams) (*Court, error)
	// GetOptions implements getOptions operation.
	//
	// Current options.
	//
	// GET /options
	GetOptions(ctx context.Context) (*OptionSet, error)
	// GetToolbar implements getToolbar operation.
	//
	// Toolbar state of a tab.
	//
	// GET /tabs/{id}/toolbar
	GetToolbar(ctx context.Context, params GetToolbarParams) (*Toolbar, error)
	// ListCourts implements listCourts operation.
	//
	// List supported courts.
	//
	// GET /courts
	ListCourts(ctx context.Context, params ListCourtsParams) (*CourtList, error)
	// ListNotifications implements listNotifications operation.
	//
	// Visible notifications, newest first.
	//
	// GET /notifications
	ListNotifications(ctx context.Context, params ListNotificationsParams) (*NotificationList, error)
	// Navigate implements navigate operation.
	//
	// Report that a tab loaded a page.
	//
	// POST /tabs/{id}/navigation
	Navigate(ctx context.Context, req *PageRequest, params NavigateParams) (*Page, error)
	// ReportUpload implements reportUpload operation.
	//
	// Queue the notification for a finished upload.
	//
	// POST /uploads
	ReportUpload(ctx context.Context, req *Upload) error
	// SetOption implements setOption operation.
	//
	// Change one option.
	//
	// PUT /options/{key}
	SetOption(ctx context.Context, req *OptionValue, params SetOptionParams) (*OptionSet, error)
	// NewError creates *ServerErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ServerErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
