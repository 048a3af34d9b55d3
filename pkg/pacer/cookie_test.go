package pacer_test

import (
	"recap/pkg/pacer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPacerCookie(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "session", header: "PacerSession=abc123", want: true},
		{name: "unvalidated session", header: "PacerSession=unvalidated-xyz", want: false},
		{name: "unrelated", header: "foo=bar", want: false},
		{name: "empty", header: "", want: false},
		{name: "user among others", header: "foo=bar; PacerUser=jdoe 123; baz=qux", want: true},
		{name: "user wins over session", header: "PacerUser=unvalidated; PacerSession=abc", want: false},
		{name: "empty user falls back to session", header: "PacerUser=; PacerSession=abc", want: true},
		{name: "empty session", header: "PacerSession=", want: false},
		{name: "spaces around pairs", header: "  PacerSession = abc ;foo=bar", want: true},
		{name: "no equals", header: "PacerSession", want: false},
		{name: "later duplicate wins", header: "PacerSession=abc; PacerSession=unvalidated", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, pacer.HasPacerCookie(tc.header))
		})
	}
}
