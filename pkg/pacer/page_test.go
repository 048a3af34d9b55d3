package pacer_test

import (
	"recap/pkg/pacer"
	"testing"

	"github.com/stretchr/testify/require"
)

const doc1URL = "https://ecf.cand.uscourts.gov/doc1/034014010231"

func TestIsAttachmentMenuPage(t *testing.T) {
	require.True(t, pacer.IsAttachmentMenuPage(doc1URL, pacer.InputValues{"1", "2", "Download All"}))
	require.False(t, pacer.IsAttachmentMenuPage(doc1URL, pacer.InputValues{"Download All", "View Document"}))
	require.False(t, pacer.IsAttachmentMenuPage(doc1URL, pacer.InputValues{}))
	require.False(t, pacer.IsAttachmentMenuPage(doc1URL, nil))
	require.False(t, pacer.IsAttachmentMenuPage(
		"https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?1", pacer.InputValues{"Download All"}))
	require.False(t, pacer.IsAttachmentMenuPage(doc1URL, pacer.InputValues{"download all"}))
}

func TestIsSingleDocumentPage(t *testing.T) {
	require.True(t, pacer.IsSingleDocumentPage(doc1URL, pacer.InputValues{"View Document"}))
	require.False(t, pacer.IsSingleDocumentPage(doc1URL, pacer.InputValues{"View Document", "Clear"}))
	require.False(t, pacer.IsSingleDocumentPage(doc1URL, pacer.InputValues{}))
	require.False(t, pacer.IsSingleDocumentPage("https://example.com/", pacer.InputValues{"View Document"}))
}
