package domain

// PageKind is the classification of a page visited by the user.
type PageKind string

const (
	// PageKindNotPacer is any page outside the PACER hosts.
	PageKindNotPacer PageKind = "not_pacer"
	// PageKindPacerOther is a PACER page with no more specific classification.
	PageKindPacerOther PageKind = "pacer_other"
	// PageKindDocketQuery is the docket or history query form of a case.
	PageKindDocketQuery PageKind = "docket_query"
	// PageKindDocketDisplay is a generated docket or history report.
	PageKindDocketDisplay PageKind = "docket_display"
	// PageKindDocument is a document view URL whose page content was not inspected.
	PageKindDocument PageKind = "document"
	// PageKindAttachmentMenu is a /doc1/ page listing the attachments of a filing.
	PageKindAttachmentMenu PageKind = "attachment_menu"
	// PageKindSingleDocument is a /doc1/ page offering a single document.
	PageKindSingleDocument PageKind = "single_document"
)

// IsPacer reports whether the kind belongs to a PACER page.
func (k PageKind) IsPacer() bool {
	return k != "" && k != PageKindNotPacer
}

// Page is the result of classifying a URL and, optionally, its loaded DOM.
// Empty strings mean the corresponding identifier could not be extracted.
type Page struct {
	// URL is the classified address, as given.
	URL string `json:"url"`
	// Kind is the most specific classification that applies.
	Kind PageKind `json:"kind"`
	// Court is the PACER court code taken from the host.
	Court string `json:"court,omitempty"`
	// CanonicalCourt is Court mapped through the alias table.
	CanonicalCourt string `json:"canonicalCourt,omitempty"`
	// CourtAbbreviation is the citation abbreviation of Court, when known.
	CourtAbbreviation string `json:"courtAbbreviation,omitempty"`
	// Appellate is set for courts of appeals.
	Appellate bool `json:"appellate"`
	// CaseNumber is PACER's internal numeric case id.
	CaseNumber string `json:"caseNumber,omitempty"`
	// DocumentID is the normalized doc1 id.
	DocumentID string `json:"documentId,omitempty"`
	// BaseName is the last path segment of URL.
	BaseName string `json:"baseName,omitempty"`
}
