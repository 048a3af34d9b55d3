package pacer

const (
	downloadAllLabel  = "Download All"
	viewDocumentLabel = "View Document"
)

// InputSource is the slice of a loaded page the classifier needs: the value
// attribute of every input element, in document order.
type InputSource interface {
	InputValues() []string
}

// InputValues is an InputSource backed by a fixed list of values.
type InputValues []string

// InputValues implements InputSource.
func (v InputValues) InputValues() []string { return v }

// IsAttachmentMenuPage reports whether a /doc1/ page lists the attachments of
// a filing. Such pages end with a "Download All" button.
func IsAttachmentMenuPage(rawURL string, doc InputSource) bool {
	return isDoc1PageWithLastInput(rawURL, doc, downloadAllLabel)
}

// IsSingleDocumentPage reports whether a /doc1/ page offers a single document
// for viewing or purchase. Such pages end with a "View Document" button.
func IsSingleDocumentPage(rawURL string, doc InputSource) bool {
	return isDoc1PageWithLastInput(rawURL, doc, viewDocumentLabel)
}

func isDoc1PageWithLastInput(rawURL string, doc InputSource, label string) bool {
	if doc == nil || !doc1PathPattern.MatchString(rawURL) {
		return false
	}
	values := doc.InputValues()
	if len(values) == 0 {
		return false
	}

	return values[len(values)-1] == label
}
