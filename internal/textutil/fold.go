package textutil

import "golang.org/x/text/cases"

// FoldKey returns the Unicode case-folded form of s. Two strings with the same
// key are equal ignoring case.
func FoldKey(s string) string {
	// cases.Caser carries state, so each call gets its own.
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under full Unicode case folding.
func EqualFold(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}
