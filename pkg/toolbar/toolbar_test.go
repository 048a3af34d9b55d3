package toolbar_test

import (
	"fmt"
	"recap/pkg/domain"
	"recap/pkg/toolbar"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStates(t *testing.T) {
	states := []domain.ToolbarState{
		toolbar.Disabled(), toolbar.NotPacer(), toolbar.LoggedOut(), toolbar.Active(), toolbar.Unsupported(),
	}
	for _, st := range states {
		require.NotEmpty(t, st.Title)
		require.Contains(t, st.Icons, "19")
		require.Contains(t, st.Icons, "38")
	}
	require.NotEqual(t, toolbar.Active().Icons, toolbar.LoggedOut().Icons)
	require.Equal(t, toolbar.NotPacer().Icons, toolbar.LoggedOut().Icons)

	// returned icon sets are independent copies
	a := toolbar.Active()
	a.Icons["19"] = "changed"
	require.NotEqual(t, "changed", toolbar.Active().Icons["19"])
}

func TestSelect(t *testing.T) {
	district := domain.Page{Kind: domain.PageKindDocketQuery, Court: "cand"}
	appellate := domain.Page{Kind: domain.PageKindPacerOther, Court: "ca9", Appellate: true}
	outside := domain.Page{Kind: domain.PageKindNotPacer}
	disabled := domain.DefaultOptions().With(domain.OptionRecapDisabled, true)

	cases := []struct {
		name  string
		opts  domain.Options
		page  domain.Page
		login domain.LoginState
		want  domain.ToolbarState
	}{
		{name: "disabled wins", opts: disabled, page: district, login: domain.LoginStateLoggedIn, want: toolbar.Disabled()},
		{name: "disabled outside pacer", opts: disabled, page: outside, want: toolbar.Disabled()},
		{name: "not pacer", opts: domain.DefaultOptions(), page: outside, login: domain.LoginStateLoggedIn, want: toolbar.NotPacer()},
		{name: "zero page", opts: domain.DefaultOptions(), page: domain.Page{}, want: toolbar.NotPacer()},
		{name: "appellate", opts: domain.DefaultOptions(), page: appellate, login: domain.LoginStateLoggedIn, want: toolbar.Unsupported()},
		{name: "logged out", opts: domain.DefaultOptions(), page: district, login: domain.LoginStateLoggedOut, want: toolbar.LoggedOut()},
		{name: "unknown login", opts: domain.DefaultOptions(), page: district, want: toolbar.LoggedOut()},
		{name: "active", opts: domain.DefaultOptions(), page: district, login: domain.LoginStateLoggedIn, want: toolbar.Active()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, toolbar.Select(tc.opts, tc.page, tc.login))
		})
	}
}

func TestRegistry(t *testing.T) {
	r := toolbar.NewRegistry()

	_, ok := r.Get("1")
	require.False(t, ok)

	pacer := domain.Page{Kind: domain.PageKindDocketQuery, Court: "cand"}
	r.Set("1", pacer, toolbar.LoggedOut())
	r.Set("2", domain.Page{Kind: domain.PageKindNotPacer}, toolbar.NotPacer())
	require.Equal(t, 2, r.Len())

	st, ok := r.Get("1")
	require.True(t, ok)
	require.Equal(t, toolbar.LoggedOut(), st)

	require.Equal(t, 1, r.Refresh(domain.DefaultOptions(), domain.LoginStateLoggedIn))
	st, _ = r.Get("1")
	require.Equal(t, toolbar.Active(), st)
	st, _ = r.Get("2")
	require.Equal(t, toolbar.NotPacer(), st)

	require.True(t, r.Remove("1"))
	require.False(t, r.Remove("1"))
	require.Equal(t, 1, r.Len())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := toolbar.NewRegistry()
	page := domain.Page{Kind: domain.PageKindPacerOther}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tab := domain.TabID(fmt.Sprint(i))
			r.Set(tab, page, toolbar.LoggedOut())
			r.Refresh(domain.DefaultOptions(), domain.LoginStateLoggedIn)
			_, _ = r.Get(tab)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, r.Len())
}
