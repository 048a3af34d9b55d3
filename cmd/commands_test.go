package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestClassifyCommand(t *testing.T) {
	out := runCommand(t, classifyCommand(),
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456",
	)

	fields := map[string]string{}
	require.NoError(t, jx.DecodeStr(out).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() != jx.String {
			return d.Skip()
		}
		v, err := d.Str()
		fields[string(key)] = v

		return err
	}))
	require.Equal(t, "docket_query", fields["kind"])
	require.Equal(t, "cand", fields["court"])
	require.Equal(t, "123456", fields["caseNumber"])
	require.NotContains(t, fields, "documentId")
}

func TestClassifyCommand_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	html := `<form><input value="View Selected"><input value="Download All"></form>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0o600))

	out := runCommand(t, classifyCommand(),
		"https://ecf.cand.uscourts.gov/doc1/034114010231",
		"--html", path,
		"--referrer", "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?777",
	)
	require.Contains(t, out, `"attachment_menu"`)
	require.Contains(t, out, `"034014010231"`)
	require.Contains(t, out, `"777"`)
}

func TestClassifyCommand_MissingHTML(t *testing.T) {
	cmd := classifyCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"https://ecf.cand.uscourts.gov/doc1/1", "--html", filepath.Join(t.TempDir(), "missing.html")})
	require.Error(t, cmd.Execute())
}

func TestCourtsCommand(t *testing.T) {
	out := runCommand(t, courtsCommand(), "--appellate")
	require.Contains(t, out, "ca9")
	require.NotContains(t, out, "nysb")
}
