package pacer_test

import (
	"recap/pkg/domain"
	"recap/pkg/pacer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		url       string
		doc       pacer.InputSource
		referrers []string
		want      domain.Page
	}{
		{
			name: "not pacer",
			url:  "https://example.com/a/b?c",
			want: domain.Page{URL: "https://example.com/a/b?c", Kind: domain.PageKindNotPacer, BaseName: "b"},
		},
		{
			name: "docket query",
			url:  "https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl?123456",
			want: domain.Page{
				URL:               "https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl?123456",
				Kind:              domain.PageKindDocketQuery,
				Court:             "nysb",
				CanonicalCourt:    "nysb",
				CourtAbbreviation: "Bankr.S.D.N.Y.",
				CaseNumber:        "123456",
				BaseName:          "DktRpt.pl",
			},
		},
		{
			name:      "docket display takes case number from referrer",
			url:       "https://ecf.azb.uscourts.gov/cgi-bin/DktRpt.pl?123456-L_1_0-1",
			referrers: []string{"https://ecf.azb.uscourts.gov/cgi-bin/DktRpt.pl?123456"},
			want: domain.Page{
				URL:               "https://ecf.azb.uscourts.gov/cgi-bin/DktRpt.pl?123456-L_1_0-1",
				Kind:              domain.PageKindDocketDisplay,
				Court:             "azb",
				CanonicalCourt:    "arb",
				CourtAbbreviation: "Bankr.D.Ariz.",
				CaseNumber:        "123456",
				BaseName:          "DktRpt.pl",
			},
		},
		{
			name: "attachment menu",
			url:  "https://ecf.cand.uscourts.gov/doc1/034114010231",
			doc:  pacer.InputValues{"Download All"},
			want: domain.Page{
				URL:               "https://ecf.cand.uscourts.gov/doc1/034114010231",
				Kind:              domain.PageKindAttachmentMenu,
				Court:             "cand",
				CanonicalCourt:    "cand",
				CourtAbbreviation: "N.D.Cal.",
				DocumentID:        "034014010231",
				BaseName:          "034114010231",
			},
		},
		{
			name: "single document",
			url:  "https://ecf.cand.uscourts.gov/doc1/034014010231",
			doc:  pacer.InputValues{"View Document"},
			want: domain.Page{
				URL:               "https://ecf.cand.uscourts.gov/doc1/034014010231",
				Kind:              domain.PageKindSingleDocument,
				Court:             "cand",
				CanonicalCourt:    "cand",
				CourtAbbreviation: "N.D.Cal.",
				DocumentID:        "034014010231",
				BaseName:          "034014010231",
			},
		},
		{
			name: "document without dom",
			url:  "https://ecf.cand.uscourts.gov/doc1/034014010231",
			want: domain.Page{
				URL:               "https://ecf.cand.uscourts.gov/doc1/034014010231",
				Kind:              domain.PageKindDocument,
				Court:             "cand",
				CanonicalCourt:    "cand",
				CourtAbbreviation: "N.D.Cal.",
				DocumentID:        "034014010231",
				BaseName:          "034014010231",
			},
		},
		{
			name: "appellate court",
			url:  "https://ecf.ca9.uscourts.gov/n/beam/servlet/TransportRoom",
			want: domain.Page{
				URL:               "https://ecf.ca9.uscourts.gov/n/beam/servlet/TransportRoom",
				Kind:              domain.PageKindPacerOther,
				Court:             "ca9",
				CanonicalCourt:    "ca9",
				CourtAbbreviation: "9th Cir.",
				Appellate:         true,
				BaseName:          "TransportRoom",
			},
		},
		{
			name: "unknown court has no abbreviation",
			url:  "https://ecf.zzzz.uscourts.gov/",
			want: domain.Page{
				URL:            "https://ecf.zzzz.uscourts.gov/",
				Kind:           domain.PageKindPacerOther,
				Court:          "zzzz",
				CanonicalCourt: "zzzz",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pacer.Classify(tc.url, tc.doc, tc.referrers...)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want.Kind.IsPacer(), got.Court != "")
		})
	}
}
