// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// ChangeCookies implements changeCookies operation.
//
// Report the cookies of a domain after a change.
//
// POST /cookies
func (UnimplementedHandler) ChangeCookies(ctx context.Context, req *CookieChange) (r *LoginStatus, _ error) {
	return r, ht.ErrNotImplemented
}

// Classify implements classify operation.
//
// Classify a URL and optional page HTML.
//
// POST /classify
func (UnimplementedHandler) Classify(ctx context.Context, req *PageRequest) (r *Page, _ error) {
	return r, ht.ErrNotImplemented
}

// CloseTab implements closeTab operation.
//
// Forget a closed tab.
//
// DELETE /tabs/{id}
func (UnimplementedHandler) CloseTab(ctx context.Context, params CloseTabParams) error {
	return ht.ErrNotImplemented
}

// DismissNotification implements dismissNotification operation.
//
// Hide a notification.
//
// DELETE /notifications/{id}
func (UnimplementedHandler) DismissNotification(ctx context.Context, params DismissNotificationParams) error {
	return ht.ErrNotImplemented
}

// GetCourt implements getCourt operation.
//
// Describe one court.
//
// GET /courts/{code}
func (UnimplementedHandler) GetCourt(ctx context.Context, params GetCourtParams) (r *Court, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOptions implements getOptions operation.
//
// Current options.
//
// GET /options
func (UnimplementedHandler) GetOptions(ctx context.Context) (r *OptionSet, _ error) {
	return r, ht.ErrNotImplemented
}

// GetToolbar implements getToolbar operation.
//
// Toolbar state of a tab.
//
// GET /tabs/{id}/toolbar
func (UnimplementedHandler) GetToolbar(ctx context.Context, params GetToolbarParams) (r *Toolbar, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCourts implements listCourts operation.
//
// List supported courts.
//
// GET /courts
func (UnimplementedHandler) ListCourts(ctx context.Context, params ListCourtsParams) (r *CourtList, _ error) {
	return r, ht.ErrNotImplemented
}

// ListNotifications implements listNotifications operation.
//
// Visible notifications, newest first.
//
// GET /notifications
func (UnimplementedHandler) ListNotifications(ctx context.Context, params ListNotificationsParams) (r *NotificationList, _ error) {
	return r, ht.ErrNotImplemented
}

// Navigate implements navigate operation.
//
// Report that a tab loaded a page.
//
// POST /tabs/{id}/navigation
func (UnimplementedHandler) Navigate(ctx context.Context, req *PageRequest, params NavigateParams) (r *Page, _ error) {
	return r, ht.ErrNotImplemented
}

// ReportUpload implements reportUpload operation.
//
// Queue the notification for a finished upload.
//
// POST /uploads
func (UnimplementedHandler) ReportUpload(ctx context.Context, req *Upload) error {
	return ht.ErrNotImplemented
}

// SetOption implements setOption operation.
//
// Change one option.
//
// PUT /options/{key}
func (UnimplementedHandler) SetOption(ctx context.Context, req *OptionValue, params SetOptionParams) (r *OptionSet, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ServerErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ServerErrorStatusCode) {
	r = new(ServerErrorStatusCode)
	return r
}
