package pacer

import "recap/pkg/domain"

// Classify runs every classifier over rawURL and returns the most specific page
// kind together with the identifiers that could be extracted. doc may be nil
// when the page content is not available. referrers are consulted after
// rawURL, in order, for the case number.
func Classify(rawURL string, doc InputSource, referrers ...string) domain.Page {
	page := domain.Page{
		URL:      rawURL,
		Kind:     domain.PageKindNotPacer,
		BaseName: BaseNameFromURL(rawURL),
	}

	court, ok := CourtFromURL(rawURL)
	if !ok {
		return page
	}

	page.Court = court
	page.CanonicalCourt = CanonicalCourt(court)
	page.CourtAbbreviation, _ = CourtAbbreviation(court)
	page.Appellate = IsAppellateCourt(court)
	page.CaseNumber, _ = CaseNumberFromURLs(append([]string{rawURL}, referrers...)...)
	page.DocumentID, _ = DocumentIDFromURL(rawURL)
	page.Kind = pageKind(rawURL, doc)

	return page
}

func pageKind(rawURL string, doc InputSource) domain.PageKind {
	switch {
	case IsAttachmentMenuPage(rawURL, doc):
		return domain.PageKindAttachmentMenu
	case IsSingleDocumentPage(rawURL, doc):
		return domain.PageKindSingleDocument
	case IsDocketQueryURL(rawURL):
		return domain.PageKindDocketQuery
	case IsDocketDisplayURL(rawURL):
		return domain.PageKindDocketDisplay
	case IsDocumentURL(rawURL):
		return domain.PageKindDocument
	default:
		return domain.PageKindPacerOther
	}
}
