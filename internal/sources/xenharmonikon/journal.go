package xenharmonikon

// Authors published in the journal, as credited.
const (
	authorColvig   = "William Colvig"
	authorDarreg   = "Ivor Darreg"
	authorLondon   = "Larry London"
	authorMitchell = "Geordan Mitchell"
	authorSecor    = "George Secor"
	authorWilson   = "Erv Wilson"
)

// issue is one journal number.
type issue struct {
	// WholeNumber is the printed issue number, as text because of the
	// combined "7 & 8" issue.
	WholeNumber string
	Name        string
}

var journal = map[string]issue{
	"xen01": {"1", "Xenharmonikon 1 (1974)"},
	"xen02": {"2", "Xenharmonikon 2 (1974)"},
	"xen03": {"3", "Xenharmonikon 3 (1975)"},
	"xen04": {"4", "Xenharmonikon 4 (1975)"},
	"xen05": {"5", "Xenharmonikon 5 (1976)"},
	"xen06": {"6", "Xenharmonikon 6 (1977)"},
	"xen07": {"7 & 8", "Xenharmonikon 7 & 8 (1979)"},
	"xen09": {"9", "Xenharmonikon 9 (1986)"},
	"xen10": {"10", "Xenharmonikon 10 (1987)"},
	"xen11": {"11", "Xenharmonikon 11 (1988)"},
	"xen12": {"12", "Xenharmonikon 12 (1989)"},
	"xen13": {"13", "Xenharmonikon 13 (1991)"},
	"xen14": {"14", "Xenharmonikon 14 (1993)"},
	"xen15": {"15", "Xenharmonikon 15 (1993)"},
	"xen16": {"16", "Xenharmonikon 16 (1995)"},
	"xen17": {"17", "Xenharmonikon 17 (1998)"},
	"xen18": {"18", "Xenharmonikon 18 (2006)"},
}
