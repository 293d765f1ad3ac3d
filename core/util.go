package core

import "sort"

// sortedKeys returns the keys of a string set in ascending lexicographic order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// orderedPair returns (a,b) sorted lexicographically, so {x,y} and {y,x}
// produce the same canonical ordering.
func orderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// orderedTriple returns a,b,c sorted lexicographically ascending.
func orderedTriple(a, b, c string) [3]string {
	t := [3]string{a, b, c}
	sort.Strings(t[:])
	return t
}
