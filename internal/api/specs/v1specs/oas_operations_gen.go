// Code generated by ogen, DO NOT EDIT.

package v1specs

// OperationName is the ogen operation name
type OperationName = string

const (
	ChangeCookiesOperation       OperationName = "ChangeCookies"
	ClassifyOperation            OperationName = "Classify"
	CloseTabOperation            OperationName = "CloseTab"
	DismissNotificationOperation OperationName = "DismissNotification"
	GetCourtOperation            OperationName = "GetCourt"
	GetOptionsOperation          OperationName = "GetOptions"
	GetToolbarOperation          OperationName = "GetToolbar"
	ListCourtsOperation          OperationName = "ListCourts"
	ListNotificationsOperation   OperationName = "ListNotifications"
	NavigateOperation            OperationName = "Navigate"
	ReportUploadOperation        OperationName = "ReportUpload"
	SetOptionOperation           OperationName = "SetOption"
)
