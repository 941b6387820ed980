package either

//go:generate go tool stringer -type=CaseEnum -output=case_string.go

type CaseEnum int

const (
	// CaseNone is the zero value: nothing decoded or set yet.
	CaseNone CaseEnum = iota

	CaseString
	CaseStruct
	CaseVec
	CaseSingle

	// CaseTotal is a constant that represents the total number of cases defined
	CaseTotal = int(iota)
)
