package tracker

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// NormalizeURL prepares a URL reported by a browser for classification:
//   - Lower-case the scheme and host
//   - Ensure path is present; empty path becomes "/"
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Remove the fragment
//
// The path and the raw query are kept byte for byte; PACER query strings such
// as "?123-L_1_0-1" are not key=value pairs and must not be re-encoded.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("URL must be absolute")
	}

	u.Scheme = strings.ToLower(u.Scheme)

	if u.Path == "" {
		u.Path = "/"
	}

	host := strings.ToLower(u.Host)
	if ph, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = ph
			// IPv6 literals keep their brackets
			if strings.Contains(ph, ":") {
				host = "[" + ph + "]"
			}
		}
	}
	u.Host = host

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
