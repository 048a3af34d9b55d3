package htmldoc_test

import (
	"recap/pkg/pacer"
	"recap/pkg/pacer/htmldoc"
	"testing"

	"github.com/stretchr/testify/require"
)

const attachmentMenuHTML = `<html><body>
<form method="post" action="/doc1/034014010231">
<table>
<tr><td><input type="checkbox" name="att1" value="1"></td><td>Exhibit A</td></tr>
<tr><td><input type="checkbox" name="att2" value="2"></td><td>Exhibit B</td></tr>
</table>
<input type="hidden" name="caseid">
<input type="submit" value="Download All">
</form>
</body></html>`

func TestParse_InputValuesInDocumentOrder(t *testing.T) {
	doc, err := htmldoc.ParseString(attachmentMenuHTML)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "", "Download All"}, doc.InputValues())
}

func TestParse_NoInputs(t *testing.T) {
	doc, err := htmldoc.ParseString(`<html><body><p>nothing here</p></body></html>`)
	require.NoError(t, err)
	require.Empty(t, doc.InputValues())
}

func TestDocument_NilIsEmpty(t *testing.T) {
	var doc *htmldoc.Document
	require.Nil(t, doc.InputValues())
}

func TestDocument_DrivesClassifier(t *testing.T) {
	doc, err := htmldoc.ParseString(attachmentMenuHTML)
	require.NoError(t, err)

	url := "https://ecf.cand.uscourts.gov/doc1/034014010231"
	require.True(t, pacer.IsAttachmentMenuPage(url, doc))
	require.False(t, pacer.IsSingleDocumentPage(url, doc))

	single, err := htmldoc.ParseString(`<form><input type="submit" value="View Document"></form>`)
	require.NoError(t, err)
	require.True(t, pacer.IsSingleDocumentPage(url, single))
}
