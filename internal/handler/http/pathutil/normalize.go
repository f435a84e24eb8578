// Package pathutil maps request paths onto a bounded set of metric labels.
package pathutil

import "strings"

// OtherPath is the label used for every path that is not a known route.
const OtherPath = "other"

// knownPaths lists the routes served by the API. Anything else, including
// scanner traffic and typos, collapses to OtherPath.
var knownPaths = map[string]struct{}{
	"/shuffle": {},
	"/status":  {},
	"/ping":    {},
	"/secret":  {},
}

// NormalizePath returns path when it names a known route and OtherPath
// otherwise, so unknown URLs cannot grow the label set.
//
// Query strings are ignored:
//
//	NormalizePath("/shuffle?p=abc") // "/shuffle"
//	NormalizePath("/ping/")         // "other"
//	NormalizePath("/wp-login.php")  // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if _, ok := knownPaths[path]; ok {
		return path
	}
	return OtherPath
}

// GetExpectedCardinality returns the number of distinct path labels
// NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(knownPaths) + 1
}
