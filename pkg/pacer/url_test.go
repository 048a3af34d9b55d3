package pacer_test

import (
	"recap/pkg/pacer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourtFromURL(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		court string
		ok    bool
	}{
		{name: "ecf host", in: "https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl", court: "nysb", ok: true},
		{name: "upper case", in: "HTTPS://ECF.NYSB.USCOURTS.GOV/x", court: "nysb", ok: true},
		{name: "training host", in: "https://ecf-train.cand.uscourts.gov/", court: "cand", ok: true},
		{name: "pacer host", in: "http://pacer.ca9.uscourts.gov/doc1/123", court: "ca9", ok: true},
		{name: "hyphenated court", in: "https://ecf.nysb-mega.uscourts.gov/", court: "nysb-mega", ok: true},
		{name: "other host", in: "https://example.com/", ok: false},
		{name: "uscourts but not pacer", in: "https://www.cand.uscourts.gov/", ok: false},
		{name: "no path", in: "https://ecf.cand.uscourts.gov", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "::not a url::", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			court, ok := pacer.CourtFromURL(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.court, court)
		})
	}
}

func TestIsDocumentURL(t *testing.T) {
	require.True(t, pacer.IsDocumentURL("https://ecf.cand.uscourts.gov/doc1/123456789"))
	require.True(t, pacer.IsDocumentURL("https://ecf.cand.uscourts.gov/cgi-bin/show_doc.pl?caseid=1"))
	require.False(t, pacer.IsDocumentURL("https://example.com/doc1/123456789"))
	require.False(t, pacer.IsDocumentURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123"))
	require.False(t, pacer.IsDocumentURL("https://ecf.cand.uscourts.gov/doc1/abc"))
	require.False(t, pacer.IsDocumentURL(""))
}

func TestIsDocketQueryURL(t *testing.T) {
	require.True(t, pacer.IsDocketQueryURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456"))
	require.True(t, pacer.IsDocketQueryURL("https://ecf.cand.uscourts.gov/cgi-bin/HistDocQry.pl?42"))
	require.False(t, pacer.IsDocketQueryURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123abc"))
	require.False(t, pacer.IsDocketQueryURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456-0"))
	require.False(t, pacer.IsDocketQueryURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl"))
}

func TestIsDocketDisplayURL(t *testing.T) {
	require.True(t, pacer.IsDocketDisplayURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456-0"))
	require.True(t, pacer.IsDocketDisplayURL("https://ecf.cand.uscourts.gov/cgi-bin/HistDocQry.pl?102252497130826-L_1_0-1"))
	require.False(t, pacer.IsDocketDisplayURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456"))
	require.False(t, pacer.IsDocketDisplayURL("https://ecf.cand.uscourts.gov/cgi-bin/iquery.pl?1-2"))
}

func TestCaseNumberFromURLs(t *testing.T) {
	got, ok := pacer.CaseNumberFromURLs("https://other.com/?999", "https://ecf.x.uscourts.gov/y?12345")
	require.True(t, ok)
	require.Equal(t, "12345", got)

	// order decides the winner
	got, ok = pacer.CaseNumberFromURLs(
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?111",
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?222",
	)
	require.True(t, ok)
	require.Equal(t, "111", got)

	// the first URL qualifies by host but not by query, so the second wins
	got, ok = pacer.CaseNumberFromURLs(
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?111-L_1",
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?222",
	)
	require.True(t, ok)
	require.Equal(t, "222", got)

	_, ok = pacer.CaseNumberFromURLs("https://other.com/?999", "not a url")
	require.False(t, ok)

	_, ok = pacer.CaseNumberFromURLs()
	require.False(t, ok)
}

func TestDocumentIDFromURL(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{in: "https://ecf.cand.uscourts.gov/doc1/034014010231", out: "034014010231", ok: true},
		{in: "https://ecf.cand.uscourts.gov/doc1/034114010231", out: "034014010231", ok: true},
		{in: "https://ecf.cand.uscourts.gov/doc1/123456789", out: "123056789", ok: true},
		{in: "https://ecf.cand.uscourts.gov/doc1/1234", out: "1230", ok: true},
		{in: "https://ecf.cand.uscourts.gov/doc1/123", out: "1230", ok: true},
		{in: "https://ecf.cand.uscourts.gov/doc1/123?caseid=1", ok: false},
		{in: "https://ecf.cand.uscourts.gov/cgi-bin/show_doc.pl", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := pacer.DocumentIDFromURL(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.out, got, tc.in)
		if ok {
			require.Len(t, got, max(len(pacer.BaseNameFromURL(tc.in)), 4), tc.in)
		}
	}
}

func TestBaseNameFromURL(t *testing.T) {
	require.Equal(t, "DktRpt.pl", pacer.BaseNameFromURL("https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456"))
	require.Equal(t, "034014010231", pacer.BaseNameFromURL("https://ecf.cand.uscourts.gov/doc1/034014010231"))
	require.Equal(t, "", pacer.BaseNameFromURL("https://ecf.cand.uscourts.gov/"))
	require.Equal(t, "show_doc.pl", pacer.BaseNameFromURL("/cgi-bin/show_doc.pl?a=/b/c"))
	require.Equal(t, "plain", pacer.BaseNameFromURL("plain"))
}

func TestURLFunctionsAreIdempotent(t *testing.T) {
	urls := []string{
		"https://ecf.cand.uscourts.gov/doc1/034114010231",
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456",
		"https://example.com/",
	}
	for _, u := range urls {
		c1, ok1 := pacer.CourtFromURL(u)
		c2, ok2 := pacer.CourtFromURL(u)
		require.Equal(t, c1, c2)
		require.Equal(t, ok1, ok2)

		d1, _ := pacer.DocumentIDFromURL(u)
		d2, _ := pacer.DocumentIDFromURL(u)
		require.Equal(t, d1, d2)

		require.Equal(t, pacer.IsDocketQueryURL(u), pacer.IsDocketQueryURL(u))
		require.Equal(t, pacer.Classify(u, nil), pacer.Classify(u, nil))
	}
}
