// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

func (s *ServerErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// CloseTabNoContent is response for CloseTab operation.
type CloseTabNoContent struct{}

// Ref: #/components/schemas/CookieChange
type CookieChange struct {
	Domain  string    `json:"domain"`
	Cookies OptString `json:"cookies"`
}

// GetDomain returns the value of Domain.
func (s *CookieChange) GetDomain() string {
	return s.Domain
}

// GetCookies returns the value of Cookies.
func (s *CookieChange) GetCookies() OptString {
	return s.Cookies
}

// SetDomain sets the value of Domain.
func (s *CookieChange) SetDomain(val string) {
	s.Domain = val
}

// SetCookies sets the value of Cookies.
func (s *CookieChange) SetCookies(val OptString) {
	s.Cookies = val
}

// Ref: #/components/schemas/Court
type Court struct {
	Code         string    `json:"code"`
	Abbreviation OptString `json:"abbreviation"`
	Canonical    string    `json:"canonical"`
	Appellate    bool      `json:"appellate"`
}

// GetCode returns the value of Code.
func (s *Court) GetCode() string {
	return s.Code
}

// GetAbbreviation returns the value of Abbreviation.
func (s *Court) GetAbbreviation() OptString {
	return s.Abbreviation
}

// GetCanonical returns the value of Canonical.
func (s *Court) GetCanonical() string {
	return s.Canonical
}

// GetAppellate returns the value of Appellate.
func (s *Court) GetAppellate() bool {
	return s.Appellate
}

// SetCode sets the value of Code.
func (s *Court) SetCode(val string) {
	s.Code = val
}

// SetAbbreviation sets the value of Abbreviation.
func (s *Court) SetAbbreviation(val OptString) {
	s.Abbreviation = val
}

// SetCanonical sets the value of Canonical.
func (s *Court) SetCanonical(val string) {
	s.Canonical = val
}

// SetAppellate sets the value of Appellate.
func (s *Court) SetAppellate(val bool) {
	s.Appellate = val
}

// Ref: #/components/schemas/CourtList
type CourtList struct {
	Items []Court `json:"items"`
}

// GetItems returns the value of Items.
func (s *CourtList) GetItems() []Court {
	return s.Items
}

// SetItems sets the value of Items.
func (s *CourtList) SetItems(val []Court) {
	s.Items = val
}

// DismissNotificationNoContent is response for DismissNotification operation.
type DismissNotificationNoContent struct{}

// Icon paths keyed by pixel size.
// Ref: #/components/schemas/IconSet
type IconSet map[string]string

func (s *IconSet) init() IconSet {
	m := *s
	if m == nil {
		m = map[string]string{}
		*s = m
	}
	return m
}

// Ref: #/components/schemas/LoginState
type LoginState string

const (
	LoginStateLoggedIn  LoginState = "logged_in"
	LoginStateLoggedOut LoginState = "logged_out"
)

// AllValues returns all LoginState values.
func (LoginState) AllValues() []LoginState {
	return []LoginState{
		LoginStateLoggedIn,
		LoginStateLoggedOut,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s LoginState) MarshalText() ([]byte, error) {
	switch s {
	case LoginStateLoggedIn:
		return []byte(s), nil
	case LoginStateLoggedOut:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LoginState) UnmarshalText(data []byte) error {
	switch LoginState(data) {
	case LoginStateLoggedIn:
		*s = LoginStateLoggedIn
		return nil
	case LoginStateLoggedOut:
		*s = LoginStateLoggedOut
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/LoginStatus
type LoginStatus struct {
	LoggedIn bool          `json:"loggedIn"`
	State    OptLoginState `json:"state"`
}

// GetLoggedIn returns the value of LoggedIn.
func (s *LoginStatus) GetLoggedIn() bool {
	return s.LoggedIn
}

// GetState returns the value of State.
func (s *LoginStatus) GetState() OptLoginState {
	return s.State
}

// SetLoggedIn sets the value of LoggedIn.
func (s *LoginStatus) SetLoggedIn(val bool) {
	s.LoggedIn = val
}

// SetState sets the value of State.
func (s *LoginStatus) SetState(val OptLoginState) {
	s.State = val
}

// Ref: #/components/schemas/Notification
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

// GetID returns the value of ID.
func (s *Notification) GetID() uuid.UUID {
	return s.ID
}

// GetKind returns the value of Kind.
func (s *Notification) GetKind() NotificationKind {
	return s.Kind
}

// GetTitle returns the value of Title.
func (s *Notification) GetTitle() string {
	return s.Title
}

// GetMessage returns the value of Message.
func (s *Notification) GetMessage() string {
	return s.Message
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Notification) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Notification) SetID(val uuid.UUID) {
	s.ID = val
}

// SetKind sets the value of Kind.
func (s *Notification) SetKind(val NotificationKind) {
	s.Kind = val
}

// SetTitle sets the value of Title.
func (s *Notification) SetTitle(val string) {
	s.Title = val
}

// SetMessage sets the value of Message.
func (s *Notification) SetMessage(val string) {
	s.Message = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Notification) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/NotificationKind
type NotificationKind string

const (
	NotificationKindStatus NotificationKind = "status"
	NotificationKindUpload NotificationKind = "upload"
)

// AllValues returns all NotificationKind values.
func (NotificationKind) AllValues() []NotificationKind {
	return []NotificationKind{
		NotificationKindStatus,
		NotificationKindUpload,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s NotificationKind) MarshalText() ([]byte, error) {
	switch s {
	case NotificationKindStatus:
		return []byte(s), nil
	case NotificationKindUpload:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *NotificationKind) UnmarshalText(data []byte) error {
	switch NotificationKind(data) {
	case NotificationKindStatus:
		*s = NotificationKindStatus
		return nil
	case NotificationKindUpload:
		*s = NotificationKindUpload
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/NotificationList
type NotificationList struct {
	Items []Notification `json:"items"`
}

// GetItems returns the value of Items.
func (s *NotificationList) GetItems() []Notification {
	return s.Items
}

// SetItems sets the value of Items.
func (s *NotificationList) SetItems(val []Notification) {
	s.Items = val
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptLoginState returns new OptLoginState with value set to v.
func NewOptLoginState(v LoginState) OptLoginState {
	return OptLoginState{
		Value: v,
		Set:   true,
	}
}

// OptLoginState is optional LoginState.
type OptLoginState struct {
	Value LoginState
	Set   bool
}

// IsSet returns true if OptLoginState was set.
func (o OptLoginState) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptLoginState) Reset() {
	var v LoginState
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptLoginState) SetTo(v LoginState) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptLoginState) Get() (v LoginState, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptLoginState) Or(d LoginState) LoginState {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/OptionSet
type OptionSet struct {
	RecapDisabled       bool `json:"recap_disabled"`
	UploadNotifications bool `json:"upload_notifications"`
	StatusNotifications bool `json:"status_notifications"`
}

// GetRecapDisabled returns the value of RecapDisabled.
func (s *OptionSet) GetRecapDisabled() bool {
	return s.RecapDisabled
}

// GetUploadNotifications returns the value of UploadNotifications.
func (s *OptionSet) GetUploadNotifications() bool {
	return s.UploadNotifications
}

// GetStatusNotifications returns the value of StatusNotifications.
func (s *OptionSet) GetStatusNotifications() bool {
	return s.StatusNotifications
}

// SetRecapDisabled sets the value of RecapDisabled.
func (s *OptionSet) SetRecapDisabled(val bool) {
	s.RecapDisabled = val
}

// SetUploadNotifications sets the value of UploadNotifications.
func (s *OptionSet) SetUploadNotifications(val bool) {
	s.UploadNotifications = val
}

// SetStatusNotifications sets the value of StatusNotifications.
func (s *OptionSet) SetStatusNotifications(val bool) {
	s.StatusNotifications = val
}

// Ref: #/components/schemas/OptionValue
type OptionValue struct {
	Value bool `json:"value"`
}

// GetValue returns the value of Value.
func (s *OptionValue) GetValue() bool {
	return s.Value
}

// SetValue sets the value of Value.
func (s *OptionValue) SetValue(val bool) {
	s.Value = val
}

// Ref: #/components/schemas/Page
type Page struct {
	URL               string    `json:"url"`
	Kind              PageKind  `json:"kind"`
	Pacer             bool      `json:"pacer"`
	Court             OptString `json:"court"`
	CanonicalCourt    OptString `json:"canonicalCourt"`
	CourtAbbreviation OptString `json:"courtAbbreviation"`
	Appellate         bool      `json:"appellate"`
	CaseNumber        OptString `json:"caseNumber"`
	DocumentId        OptString `json:"documentId"`
	BaseName          OptString `json:"baseName"`
}

// GetURL returns the value of URL.
func (s *Page) GetURL() string {
	return s.URL
}

// GetKind returns the value of Kind.
func (s *Page) GetKind() PageKind {
	return s.Kind
}

// GetPacer returns the value of Pacer.
func (s *Page) GetPacer() bool {
	return s.Pacer
}

// GetCourt returns the value of Court.
func (s *Page) GetCourt() OptString {
	return s.Court
}

// GetCanonicalCourt returns the value of CanonicalCourt.
func (s *Page) GetCanonicalCourt() OptString {
	return s.CanonicalCourt
}

// GetCourtAbbreviation returns the value of CourtAbbreviation.
func (s *Page) GetCourtAbbreviation() OptString {
	return s.CourtAbbreviation
}

// GetAppellate returns the value of Appellate.
func (s *Page) GetAppellate() bool {
	return s.Appellate
}

// GetCaseNumber returns the value of CaseNumber.
func (s *Page) GetCaseNumber() OptString {
	return s.CaseNumber
}

// GetDocumentId returns the value of DocumentId.
func (s *Page) GetDocumentId() OptString {
	return s.DocumentId
}

// GetBaseName returns the value of BaseName.
func (s *Page) GetBaseName() OptString {
	return s.BaseName
}

// SetURL sets the value of URL.
func (s *Page) SetURL(val string) {
	s.URL = val
}

// SetKind sets the value of Kind.
func (s *Page) SetKind(val PageKind) {
	s.Kind = val
}

// SetPacer sets the value of Pacer.
func (s *Page) SetPacer(val bool) {
	s.Pacer = val
}

// SetCourt sets the value of Court.
func (s *Page) SetCourt(val OptString) {
	s.Court = val
}

// SetCanonicalCourt sets the value of CanonicalCourt.
func (s *Page) SetCanonicalCourt(val OptString) {
	s.CanonicalCourt = val
}

// SetCourtAbbreviation sets the value of CourtAbbreviation.
func (s *Page) SetCourtAbbreviation(val OptString) {
	s.CourtAbbreviation = val
}

// SetAppellate sets the value of Appellate.
func (s *Page) SetAppellate(val bool) {
	s.Appellate = val
}

// SetCaseNumber sets the value of CaseNumber.
func (s *Page) SetCaseNumber(val OptString) {
	s.CaseNumber = val
}

// SetDocumentId sets the value of DocumentId.
func (s *Page) SetDocumentId(val OptString) {
	s.DocumentId = val
}

// SetBaseName sets the value of BaseName.
func (s *Page) SetBaseName(val OptString) {
	s.BaseName = val
}

// Ref: #/components/schemas/PageKind
type PageKind string

const (
	PageKindNotPacer       PageKind = "not_pacer"
	PageKindPacerOther     PageKind = "pacer_other"
	PageKindDocketQuery    PageKind = "docket_query"
	PageKindDocketDisplay  PageKind = "docket_display"
	PageKindDocument       PageKind = "document"
	PageKindAttachmentMenu PageKind = "attachment_menu"
	PageKindSingleDocument PageKind = "single_document"
)

// AllValues returns all PageKind values.
func (PageKind) AllValues() []PageKind {
	return []PageKind{
		PageKindNotPacer,
		PageKindPacerOther,
		PageKindDocketQuery,
		PageKindDocketDisplay,
		PageKindDocument,
		PageKindAttachmentMenu,
		PageKindSingleDocument,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PageKind) MarshalText() ([]byte, error) {
	switch s {
	case PageKindNotPacer:
		return []byte(s), nil
	case PageKindPacerOther:
		return []byte(s), nil
	case PageKindDocketQuery:
		return []byte(s), nil
	case PageKindDocketDisplay:
		return []byte(s), nil
	case PageKindDocument:
		return []byte(s), nil
	case PageKindAttachmentMenu:
		return []byte(s), nil
	case PageKindSingleDocument:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PageKind) UnmarshalText(data []byte) error {
	switch PageKind(data) {
	case PageKindNotPacer:
		*s = PageKindNotPacer
		return nil
	case PageKindPacerOther:
		*s = PageKindPacerOther
		return nil
	case PageKindDocketQuery:
		*s = PageKindDocketQuery
		return nil
	case PageKindDocketDisplay:
		*s = PageKindDocketDisplay
		return nil
	case PageKindDocument:
		*s = PageKindDocument
		return nil
	case PageKindAttachmentMenu:
		*s = PageKindAttachmentMenu
		return nil
	case PageKindSingleDocument:
		*s = PageKindSingleDocument
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PageRequest
type PageRequest struct {
	URL      string    `json:"url"`
	Referrer OptString `json:"referrer"`
	// Page HTML; needed to recognize attachment menus and single document pages.
	Document OptString `json:"document"`
}

// GetURL returns the value of URL.
func (s *PageRequest) GetURL() string {
	return s.URL
}

// GetReferrer returns the value of Referrer.
func (s *PageRequest) GetReferrer() OptString {
	return s.Referrer
}

// GetDocument returns the value of Document.
func (s *PageRequest) GetDocument() OptString {
	return s.Document
}

// SetURL sets the value of URL.
func (s *PageRequest) SetURL(val string) {
	s.URL = val
}

// SetReferrer sets the value of Referrer.
func (s *PageRequest) SetReferrer(val OptString) {
	s.Referrer = val
}

// SetDocument sets the value of Document.
func (s *PageRequest) SetDocument(val OptString) {
	s.Document = val
}

// ReportUploadAccepted is response for ReportUpload operation.
type ReportUploadAccepted struct{}

// Ref: #/components/schemas/ServerError
type ServerError struct {
	// One of BAD_REQUEST, UNAUTHORIZED, NOT_FOUND, INTERNAL, UNAVAILABLE.
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *ServerError) GetCode() string {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *ServerError) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *ServerError) SetCode(val string) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *ServerError) SetMessage(val string) {
	s.Message = val
}

// ServerErrorStatusCode wraps ServerError with StatusCode.
type ServerErrorStatusCode struct {
	StatusCode int
	Response   ServerError
}

// GetStatusCode returns the value of StatusCode.
func (s *ServerErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ServerErrorStatusCode) GetResponse() ServerError {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ServerErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ServerErrorStatusCode) SetResponse(val ServerError) {
	s.Response = val
}

// Ref: #/components/schemas/Toolbar
type Toolbar struct {
	Title string  `json:"title"`
	Icons IconSet `json:"icons"`
}

// GetTitle returns the value of Title.
func (s *Toolbar) GetTitle() string {
	return s.Title
}

// GetIcons returns the value of Icons.
func (s *Toolbar) GetIcons() IconSet {
	return s.Icons
}

// SetTitle sets the value of Title.
func (s *Toolbar) SetTitle(val string) {
	s.Title = val
}

// SetIcons sets the value of Icons.
func (s *Toolbar) SetIcons(val IconSet) {
	s.Icons = val
}

// Ref: #/components/schemas/Upload
type Upload struct {
	TabId       OptString `json:"tabId"`
	Court       OptString `json:"court"`
	Description string    `json:"description"`
}

// GetTabId returns the value of TabId.
func (s *Upload) GetTabId() OptString {
	return s.TabId
}

// GetCourt returns the value of Court.
func (s *Upload) GetCourt() OptString {
	return s.Court
}

// GetDescription returns the value of Description.
func (s *Upload) GetDescription() string {
	return s.Description
}

// SetTabId sets the value of TabId.
func (s *Upload) SetTabId(val OptString) {
	s.TabId = val
}

// SetCourt sets the value of Court.
func (s *Upload) SetCourt(val OptString) {
	s.Court = val
}

// SetDescription sets the value of Description.
func (s *Upload) SetDescription(val string) {
	s.Description = val
}
