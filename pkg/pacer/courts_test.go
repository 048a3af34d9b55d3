package pacer_test

import (
	"recap/pkg/pacer"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalCourt(t *testing.T) {
	require.Equal(t, "arb", pacer.CanonicalCourt("azb"))
	require.Equal(t, "uscfc", pacer.CanonicalCourt("cofc"))
	require.Equal(t, "nebraskab", pacer.CanonicalCourt("neb"))
	require.Equal(t, "nysb", pacer.CanonicalCourt("nysb-mega"))
	require.Equal(t, "nysb", pacer.CanonicalCourt("nysb"))
	require.Equal(t, "not-a-court", pacer.CanonicalCourt("not-a-court"))
	require.Equal(t, "", pacer.CanonicalCourt(""))
}

func TestIsAppellateCourt(t *testing.T) {
	for _, code := range []string{"ca1", "ca2", "ca3", "ca4", "ca5", "ca6", "ca7", "ca8", "ca9", "ca10", "ca11", "cadc", "cafc"} {
		require.True(t, pacer.IsAppellateCourt(code), code)
	}
	require.False(t, pacer.IsAppellateCourt("nysb"))
	require.False(t, pacer.IsAppellateCourt("ca12"))
	require.False(t, pacer.IsAppellateCourt(""))
}

func TestCourtAbbreviation(t *testing.T) {
	abbr, ok := pacer.CourtAbbreviation("nysb")
	require.True(t, ok)
	require.Equal(t, "Bankr.S.D.N.Y.", abbr)

	abbr, ok = pacer.CourtAbbreviation("cand")
	require.True(t, ok)
	require.Equal(t, "N.D.Cal.", abbr)

	abbr, ok = pacer.CourtAbbreviation("zzzz")
	require.False(t, ok)
	require.Empty(t, abbr)
}

func TestCourtTablesShape(t *testing.T) {
	courts := pacer.Courts()
	require.Greater(t, len(courts), 180)
	require.True(t, sort.StringsAreSorted(courts))

	for _, code := range courts {
		require.True(t, pacer.IsValidCourtCode(code), code)
		require.LessOrEqual(t, len(code), 6, code)
		abbr, ok := pacer.CourtAbbreviation(code)
		require.True(t, ok, code)
		require.NotEmpty(t, abbr, code)
	}

	// every appellate court has an abbreviation
	for _, code := range []string{"ca1", "ca11", "cadc", "cafc"} {
		_, ok := pacer.CourtAbbreviation(code)
		require.True(t, ok, code)
	}

	for _, code := range []string{"azb", "cofc", "neb", "nysb-mega"} {
		require.True(t, pacer.IsValidCourtCode(code), code)
		require.True(t, pacer.IsValidCourtCode(pacer.CanonicalCourt(code)), code)
	}

	require.False(t, pacer.IsValidCourtCode("NYSB"))
	require.False(t, pacer.IsValidCourtCode(""))
	require.False(t, pacer.IsValidCourtCode("ny sb"))
}
