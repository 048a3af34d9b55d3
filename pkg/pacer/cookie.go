package pacer

import (
	"regexp"
	"strings"
)

var cookiePairPattern = regexp.MustCompile(`\s*([^=;]+)=([^;]*)`) //nolint: gochecknoglobals

const (
	pacerUserCookie    = "PacerUser"
	pacerSessionCookie = "PacerSession"
	unvalidatedMarker  = "unvalidated"
)

// HasPacerCookie reports whether a raw Cookie header carries a validated PACER
// login. PacerUser wins over PacerSession when both are set; a value that
// contains "unvalidated" is not a login.
func HasPacerCookie(cookieHeader string) bool {
	cookies := parseCookies(cookieHeader)

	value := cookies[pacerUserCookie]
	if value == "" {
		value = cookies[pacerSessionCookie]
	}

	return value != "" && !strings.Contains(value, unvalidatedMarker)
}

// parseCookies splits a Cookie header into name/value pairs. Later duplicates
// overwrite earlier ones.
func parseCookies(cookieHeader string) map[string]string {
	cookies := map[string]string{}
	for _, m := range cookiePairPattern.FindAllStringSubmatch(cookieHeader, -1) {
		cookies[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}

	return cookies
}
