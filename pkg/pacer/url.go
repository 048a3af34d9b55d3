package pacer

import (
	"net/url"
	"regexp"
	"strings"
)

//nolint: gochecknoglobals
var (
	courtHostPattern     = regexp.MustCompile(`^\w+://(ecf|ecf-train|pacer)\.([a-z0-9-]+)\.uscourts\.gov/`)
	documentPathPattern  = regexp.MustCompile(`/doc1/\d+|/cgi-bin/show_doc`)
	doc1PathPattern      = regexp.MustCompile(`/doc1/\d+`)
	documentIDPattern    = regexp.MustCompile(`/doc1/(\d+)$`)
	docketQueryPattern   = regexp.MustCompile(`/(DktRpt|HistDocQry)\.pl\?\d+$`)
	docketDisplayPattern = regexp.MustCompile(`/(DktRpt|HistDocQry)\.pl\?\w+-[\w-]+$`)
	caseNumberPattern    = regexp.MustCompile(`\?(\d+)$`)
)

// receiptFlagOffset is the position in a doc1 id where PACER encodes whether
// the fee receipt page was shown.
const receiptFlagOffset = 3

// CourtFromURL extracts the court code from a PACER URL such as
// https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl. The match is
// case-insensitive and the returned code is lowercase.
func CourtFromURL(rawURL string) (CourtCode, bool) {
	m := courtHostPattern.FindStringSubmatch(strings.ToLower(rawURL))
	if m == nil {
		return "", false
	}

	return m[2], true
}

// IsDocumentURL reports whether rawURL points at a document view on a PACER
// host. A document-shaped path on any other host does not qualify.
func IsDocumentURL(rawURL string) bool {
	if !documentPathPattern.MatchString(rawURL) {
		return false
	}
	_, ok := CourtFromURL(rawURL)

	return ok
}

// IsDocketQueryURL reports whether rawURL is a docket or history query form,
// i.e. its query string is only the numeric case id and no report has been
// generated yet.
func IsDocketQueryURL(rawURL string) bool {
	return docketQueryPattern.MatchString(rawURL)
}

// IsDocketDisplayURL reports whether rawURL is a generated docket or history
// report. Those carry a hyphenated query string.
func IsDocketDisplayURL(rawURL string) bool {
	return docketDisplayPattern.MatchString(rawURL)
}

// CaseNumberFromURLs returns the numeric case id from the first URL, in the
// given order, whose host ends with uscourts.gov and whose query string is
// only digits. Callers decide precedence, typically the page URL before the
// referrer.
func CaseNumberFromURLs(urls ...string) (string, bool) {
	for _, rawURL := range urls {
		if !strings.HasSuffix(hostname(rawURL), "uscourts.gov") {
			continue
		}
		if m := caseNumberPattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}

	return "", false
}

// DocumentIDFromURL extracts the id of a /doc1/ URL. PACER flips the fourth
// digit depending on whether the receipt page was shown; the returned id
// always carries '0' there so both variants name the same document.
func DocumentIDFromURL(rawURL string) (string, bool) {
	m := documentIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}

	return normalizeDocumentID(m[1]), true
}

func normalizeDocumentID(id string) string {
	prefix, suffix := id, ""
	if len(id) > receiptFlagOffset {
		prefix = id[:receiptFlagOffset]
	}
	if len(id) > receiptFlagOffset+1 {
		suffix = id[receiptFlagOffset+1:]
	}

	return prefix + "0" + suffix
}

// BaseNameFromURL returns the last path segment of rawURL with any query
// string removed.
func BaseNameFromURL(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		rawURL = rawURL[:i]
	}
	if i := strings.LastIndexByte(rawURL, '/'); i >= 0 {
		return rawURL[i+1:]
	}

	return rawURL
}

// hostname returns the lowercase host of rawURL, or "" when it does not parse.
func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Hostname())
}
