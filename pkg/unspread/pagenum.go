package unspread

import (
	"math"
	"regexp"
	"strconv"
)

var pageNumRe = regexp.MustCompile(`_(\d+)\.pdf$`)

// PageNumber extracts the trailing page number from a filename of the
// form "..._<digits>.pdf". Names without a trailing number yield +Inf
// so they sort after every numbered file.
func PageNumber(filename string) float64 {
	m := pageNumRe.FindStringSubmatch(filename)
	if m == nil {
		return math.Inf(1)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return math.Inf(1)
	}
	return float64(n)
}
