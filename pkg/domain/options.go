package domain

// OptionKey names a persisted boolean user option.
type OptionKey string

const (
	// OptionRecapDisabled turns the extension off.
	OptionRecapDisabled OptionKey = "recap_disabled"
	// OptionUploadNotifications enables upload notifications.
	OptionUploadNotifications OptionKey = "upload_notifications"
	// OptionStatusNotifications enables login status notifications.
	OptionStatusNotifications OptionKey = "status_notifications"
)

// OptionKeys lists every known option key.
func OptionKeys() []OptionKey {
	return []OptionKey{OptionRecapDisabled, OptionUploadNotifications, OptionStatusNotifications}
}

// IsValid reports whether k is a known option key.
func (k OptionKey) IsValid() bool {
	switch k {
	case OptionRecapDisabled, OptionUploadNotifications, OptionStatusNotifications:
		return true
	default:
		return false
	}
}

// Options is an immutable snapshot of the persisted user options, fetched once
// per event and then read synchronously.
type Options struct {
	RecapDisabled       bool `json:"recap_disabled"`
	UploadNotifications bool `json:"upload_notifications"`
	StatusNotifications bool `json:"status_notifications"`
}

// DefaultOptions returns the options of a fresh install.
func DefaultOptions() Options {
	return Options{
		RecapDisabled:       false,
		UploadNotifications: true,
		StatusNotifications: true,
	}
}

// Get returns the value of the option named by key.
func (o Options) Get(key OptionKey) (value bool, ok bool) {
	switch key {
	case OptionRecapDisabled:
		return o.RecapDisabled, true
	case OptionUploadNotifications:
		return o.UploadNotifications, true
	case OptionStatusNotifications:
		return o.StatusNotifications, true
	default:
		return false, false
	}
}

// With returns a copy of o with key set to value. Unknown keys leave o unchanged.
func (o Options) With(key OptionKey, value bool) Options {
	switch key {
	case OptionRecapDisabled:
		o.RecapDisabled = value
	case OptionUploadNotifications:
		o.UploadNotifications = value
	case OptionStatusNotifications:
		o.StatusNotifications = value
	}

	return o
}
