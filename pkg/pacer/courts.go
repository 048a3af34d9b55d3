package pacer

import (
	"regexp"
	"sort"
)

// CourtCode is PACER's short per-court identifier, e.g. "nysb".
type CourtCode = string

// courtCodeShape is the lexical shape every court code must satisfy.
var courtCodeShape = regexp.MustCompile(`^[a-z0-9-]+$`) //nolint: gochecknoglobals

// appellateCourts holds the courts of appeals. Downstream document retrieval
// does not support them.
var appellateCourts = map[CourtCode]struct{}{ //nolint: gochecknoglobals
	"ca1": {}, "ca2": {}, "ca3": {}, "ca4": {}, "ca5": {}, "ca6": {}, "ca7": {},
	"ca8": {}, "ca9": {}, "ca10": {}, "ca11": {}, "cadc": {}, "cafc": {},
}

// courtAliases maps legacy or nonstandard PACER codes to the identifiers used
// by the archive.
var courtAliases = map[CourtCode]CourtCode{ //nolint: gochecknoglobals
	"azb":       "arb",
	"cofc":      "uscfc",
	"neb":       "nebraskab",
	"nysb-mega": "nysb",
}

// courtAbbreviations maps every supported court to its citation abbreviation.
var courtAbbreviations = map[CourtCode]string{ //nolint: gochecknoglobals
	// courts of appeals
	"ca1":  "1st Cir.",
	"ca2":  "2d Cir.",
	"ca3":  "3d Cir.",
	"ca4":  "4th Cir.",
	"ca5":  "5th Cir.",
	"ca6":  "6th Cir.",
	"ca7":  "7th Cir.",
	"ca8":  "8th Cir.",
	"ca9":  "9th Cir.",
	"ca10": "10th Cir.",
	"ca11": "11th Cir.",
	"cadc": "D.C. Cir.",
	"cafc": "Fed. Cir.",

	// national courts
	"cit":  "Ct. Int'l Trade",
	"cofc": "Fed. Cl.",
	"jpml": "J.P.M.L.",

	// Alabama
	"almd": "M.D.Ala.",
	"alnd": "N.D.Ala.",
	"alsd": "S.D.Ala.",
	"almb": "Bankr.M.D.Ala.",
	"alnb": "Bankr.N.D.Ala.",
	"alsb": "Bankr.S.D.Ala.",
	// Alaska
	"akd": "D.Alaska",
	"akb": "Bankr.D.Alaska",
	// Arizona
	"azd": "D.Ariz.",
	"azb": "Bankr.D.Ariz.",
	// Arkansas
	"ared": "E.D.Ark.",
	"arwd": "W.D.Ark.",
	"areb": "Bankr.E.D.Ark.",
	"arwb": "Bankr.W.D.Ark.",
	// California
	"cacd": "C.D.Cal.",
	"caed": "E.D.Cal.",
	"cand": "N.D.Cal.",
	"casd": "S.D.Cal.",
	"cacb": "Bankr.C.D.Cal.",
	"caeb": "Bankr.E.D.Cal.",
	"canb": "Bankr.N.D.Cal.",
	"casb": "Bankr.S.D.Cal.",
	// Colorado
	"cod": "D.Colo.",
	"cob": "Bankr.D.Colo.",
	// Connecticut
	"ctd": "D.Conn.",
	"ctb": "Bankr.D.Conn.",
	// Delaware
	"ded": "D.Del.",
	"deb": "Bankr.D.Del.",
	// District of Columbia
	"dcd": "D.D.C.",
	"dcb": "Bankr.D.D.C.",
	// Florida
	"flmd": "M.D.Fla.",
	"flnd": "N.D.Fla.",
	"flsd": "S.D.Fla.",
	"flmb": "Bankr.M.D.Fla.",
	"flnb": "Bankr.N.D.Fla.",
	"flsb": "Bankr.S.D.Fla.",
	// Georgia
	"gamd": "M.D.Ga.",
	"gand": "N.D.Ga.",
	"gasd": "S.D.Ga.",
	"gamb": "Bankr.M.D.Ga.",
	"ganb": "Bankr.N.D.Ga.",
	"gasb": "Bankr.S.D.Ga.",
	// Guam
	"gud": "D.Guam",
	"gub": "Bankr.D.Guam",
	// Hawaii
	"hid": "D.Haw.",
	"hib": "Bankr.D.Haw.",
	// Idaho
	"idd": "D.Idaho",
	"idb": "Bankr.D.Idaho",
	// Illinois
	"ilcd": "C.D.Ill.",
	"ilnd": "N.D.Ill.",
	"ilsd": "S.D.Ill.",
	"ilcb": "Bankr.C.D.Ill.",
	"ilnb": "Bankr.N.D.Ill.",
	"ilsb": "Bankr.S.D.Ill.",
	// Indiana
	"innd": "N.D.Ind.",
	"insd": "S.D.Ind.",
	"innb": "Bankr.N.D.Ind.",
	"insb": "Bankr.S.D.Ind.",
	// Iowa
	"iand": "N.D.Iowa",
	"iasd": "S.D.Iowa",
	"ianb": "Bankr.N.D.Iowa",
	"iasb": "Bankr.S.D.Iowa",
	// Kansas
	"ksd": "D.Kan.",
	"ksb": "Bankr.D.Kan.",
	// Kentucky
	"kyed": "E.D.Ky.",
	"kywd": "W.D.Ky.",
	"kyeb": "Bankr.E.D.Ky.",
	"kywb": "Bankr.W.D.Ky.",
	// Louisiana
	"laed": "E.D.La.",
	"lamd": "M.D.La.",
	"lawd": "W.D.La.",
	"laeb": "Bankr.E.D.La.",
	"lamb": "Bankr.M.D.La.",
	"lawb": "Bankr.W.D.La.",
	// Maine
	"med": "D.Me.",
	"meb": "Bankr.D.Me.",
	// Maryland
	"mdd": "D.Md.",
	"mdb": "Bankr.D.Md.",
	// Massachusetts
	"mad": "D.Mass.",
	"mab": "Bankr.D.Mass.",
	// Michigan
	"mied": "E.D.Mich.",
	"miwd": "W.D.Mich.",
	"mieb": "Bankr.E.D.Mich.",
	"miwb": "Bankr.W.D.Mich.",
	// Minnesota
	"mnd": "D.Minn.",
	"mnb": "Bankr.D.Minn.",
	// Mississippi
	"msnd": "N.D.Miss.",
	"mssd": "S.D.Miss.",
	"msnb": "Bankr.N.D.Miss.",
	"mssb": "Bankr.S.D.Miss.",
	// Missouri
	"moed": "E.D.Mo.",
	"mowd": "W.D.Mo.",
	"moeb": "Bankr.E.D.Mo.",
	"mowb": "Bankr.W.D.Mo.",
	// Montana
	"mtd": "D.Mont.",
	"mtb": "Bankr.D.Mont.",
	// Nebraska
	"ned": "D.Neb.",
	"neb": "Bankr.D.Neb.",
	// Nevada
	"nvd": "D.Nev.",
	"nvb": "Bankr.D.Nev.",
	// New Hampshire
	"nhd": "D.N.H.",
	"nhb": "Bankr.D.N.H.",
	// New Jersey
	"njd": "D.N.J.",
	"njb": "Bankr.D.N.J.",
	// New Mexico
	"nmd": "D.N.M.",
	"nmb": "Bankr.D.N.M.",
	// New York
	"nyed": "E.D.N.Y.",
	"nynd": "N.D.N.Y.",
	"nysd": "S.D.N.Y.",
	"nywd": "W.D.N.Y.",
	"nyeb": "Bankr.E.D.N.Y.",
	"nynb": "Bankr.N.D.N.Y.",
	"nysb": "Bankr.S.D.N.Y.",
	"nywb": "Bankr.W.D.N.Y.",
	// North Carolina
	"nced": "E.D.N.C.",
	"ncmd": "M.D.N.C.",
	"ncwd": "W.D.N.C.",
	"nceb": "Bankr.E.D.N.C.",
	"ncmb": "Bankr.M.D.N.C.",
	"ncwb": "Bankr.W.D.N.C.",
	// North Dakota
	"ndd": "D.N.D.",
	"ndb": "Bankr.D.N.D.",
	// Northern Mariana Islands
	"nmid": "D.N.Mar.I.",
	// Ohio
	"ohnd": "N.D.Ohio",
	"ohsd": "S.D.Ohio",
	"ohnb": "Bankr.N.D.Ohio",
	"ohsb": "Bankr.S.D.Ohio",
	// Oklahoma
	"oked": "E.D.Okla.",
	"oknd": "N.D.Okla.",
	"okwd": "W.D.Okla.",
	"okeb": "Bankr.E.D.Okla.",
	"oknb": "Bankr.N.D.Okla.",
	"okwb": "Bankr.W.D.Okla.",
	// Oregon
	"ord": "D.Or.",
	"orb": "Bankr.D.Or.",
	// Pennsylvania
	"paed": "E.D.Pa.",
	"pamd": "M.D.Pa.",
	"pawd": "W.D.Pa.",
	"paeb": "Bankr.E.D.Pa.",
	"pamb": "Bankr.M.D.Pa.",
	"pawb": "Bankr.W.D.Pa.",
	// Puerto Rico
	"prd": "D.P.R.",
	"prb": "Bankr.D.P.R.",
	// Rhode Island
	"rid": "D.R.I.",
	"rib": "Bankr.D.R.I.",
	// South Carolina
	"scd": "D.S.C.",
	"scb": "Bankr.D.S.C.",
	// South Dakota
	"sdd": "D.S.D.",
	"sdb": "Bankr.D.S.D.",
	// Tennessee
	"tned": "E.D.Tenn.",
	"tnmd": "M.D.Tenn.",
	"tnwd": "W.D.Tenn.",
	"tneb": "Bankr.E.D.Tenn.",
	"tnmb": "Bankr.M.D.Tenn.",
	"tnwb": "Bankr.W.D.Tenn.",
	// Texas
	"txed": "E.D.Tex.",
	"txnd": "N.D.Tex.",
	"txsd": "S.D.Tex.",
	"txwd": "W.D.Tex.",
	"txeb": "Bankr.E.D.Tex.",
	"txnb": "Bankr.N.D.Tex.",
	"txsb": "Bankr.S.D.Tex.",
	"txwb": "Bankr.W.D.Tex.",
	// Utah
	"utd": "D.Utah",
	"utb": "Bankr.D.Utah",
	// Vermont
	"vtd": "D.Vt.",
	"vtb": "Bankr.D.Vt.",
	// Virgin Islands
	"vid": "D.V.I.",
	// Virginia
	"vaed": "E.D.Va.",
	"vawd": "W.D.Va.",
	"vaeb": "Bankr.E.D.Va.",
	"vawb": "Bankr.W.D.Va.",
	// Washington
	"waed": "E.D.Wash.",
	"wawd": "W.D.Wash.",
	"waeb": "Bankr.E.D.Wash.",
	"wawb": "Bankr.W.D.Wash.",
	// West Virginia
	"wvnd": "N.D.W.Va.",
	"wvsd": "S.D.W.Va.",
	"wvnb": "Bankr.N.D.W.Va.",
	"wvsb": "Bankr.S.D.W.Va.",
	// Wisconsin
	"wied": "E.D.Wis.",
	"wiwd": "W.D.Wis.",
	"wieb": "Bankr.E.D.Wis.",
	"wiwb": "Bankr.W.D.Wis.",
	// Wyoming
	"wyd": "D.Wyo.",
	"wyb": "Bankr.D.Wyo.",
}

// IsValidCourtCode reports whether code has the lexical shape of a court code.
func IsValidCourtCode(code string) bool {
	return courtCodeShape.MatchString(code)
}

// CanonicalCourt maps a PACER court code to the identifier used by the
// archive. Codes without an alias pass through unchanged; the mapping does not
// validate its input.
func CanonicalCourt(code CourtCode) CourtCode {
	if canonical, ok := courtAliases[code]; ok {
		return canonical
	}

	return code
}

// IsAppellateCourt reports whether code is one of the courts of appeals.
func IsAppellateCourt(code CourtCode) bool {
	_, ok := appellateCourts[code]

	return ok
}

// CourtAbbreviation returns the citation abbreviation of a court. ok is false
// for courts that are not supported.
func CourtAbbreviation(code CourtCode) (abbreviation string, ok bool) {
	abbreviation, ok = courtAbbreviations[code]

	return abbreviation, ok
}

// Courts returns every supported court code in lexical order.
func Courts() []CourtCode {
	out := make([]CourtCode, 0, len(courtAbbreviations))
	for code := range courtAbbreviations {
		out = append(out, code)
	}
	sort.Strings(out)

	return out
}
