package domain

// TabID identifies a browser tab as reported by the client.
type TabID string

// IconSet maps a pixel size ("19", "38") to an icon path.
type IconSet map[string]string

// ToolbarState is what the browser action of a tab shows.
type ToolbarState struct {
	// Title is the tooltip of the toolbar button.
	Title string `json:"title"`
	// Icons is the icon to draw, keyed by pixel size.
	Icons IconSet `json:"icons"`
}

// LoginState is the user's PACER session as seen from cookies.
type LoginState string

const (
	// LoginStateUnknown is used before any PACER cookie was observed.
	LoginStateUnknown LoginState = ""
	// LoginStateLoggedIn means a validated PACER cookie is present.
	LoginStateLoggedIn LoginState = "logged_in"
	// LoginStateLoggedOut means no validated PACER cookie is present.
	LoginStateLoggedOut LoginState = "logged_out"
)

// LoggedIn reports whether the state is LoginStateLoggedIn.
func (s LoginState) LoggedIn() bool { return s == LoginStateLoggedIn }
