package tracker_test

import (
	"recap/internal/tracker"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host; add root path",
			in:   "HTTPS://ECF.CAND.USCOURTS.GOV",
			out:  "https://ecf.cand.uscourts.gov/",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://ecf.cand.uscourts.gov:443/cgi-bin/DktRpt.pl?123456",
			out:  "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://localhost:8080/doc1/123",
			out:  "http://localhost:8080/doc1/123",
			ok:   true,
		},
		{
			name: "query string untouched",
			in:   "https://ecf.cand.uscourts.gov/cgi-bin/HistDocQry.pl?102252497130826-L_1_0-1",
			out:  "https://ecf.cand.uscourts.gov/cgi-bin/HistDocQry.pl?102252497130826-L_1_0-1",
			ok:   true,
		},
		{
			name: "path case kept",
			in:   "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl",
			out:  "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl",
			ok:   true,
		},
		{
			name: "remove fragment",
			in:   "https://ecf.cand.uscourts.gov/doc1/034014010231#page=2",
			out:  "https://ecf.cand.uscourts.gov/doc1/034014010231",
			ok:   true,
		},
		{
			name: "ipv6 default port",
			in:   "http://[2001:db8::1]:80/a",
			out:  "http://[2001:db8::1]/a",
			ok:   true,
		},
		{name: "relative", in: "/cgi-bin/DktRpt.pl?1", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "invalid", in: "http://[::1", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tracker.NormalizeURL(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}
