package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// SerialPrefix is the fixed prefix of member registration numbers.
	SerialPrefix = "MA"
	// SerialWidth is the minimum zero-padded width; wider suffixes keep
	// their natural width (MA1000 after MA999).
	SerialWidth = 3
)

// NumericSuffix strips every non-digit character from an identifier and
// parses the remainder. ok is false for identifiers without digits; those
// never participate in the max computation.
func NumericSuffix(id string) (int, bool) {
	var b strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// serialPrefix returns the leading non-digit run of an identifier.
func serialPrefix(id string) string {
	for i, r := range id {
		if r >= '0' && r <= '9' {
			return id[:i]
		}
	}
	return id
}

// NextSerial computes the next registration number: one past the highest
// numeric suffix among the existing identifiers, zero-padded to SerialWidth.
func NextSerial(existing []string) string {
	max := 0
	for _, id := range existing {
		if n, ok := NumericSuffix(id); ok && n > max {
			max = n
		}
	}
	return FormatSerial(max + 1)
}

// FormatSerial renders a suffix as a full registration number.
func FormatSerial(n int) string {
	return fmt.Sprintf("%s%0*d", SerialPrefix, SerialWidth, n)
}

// serialLess is the natural order over registration numbers: by (prefix,
// numeric suffix), so MA1000 sorts after MA999 rather than
// lexicographically. Identifiers without digits sort before numbered ones
// with the same prefix.
func serialLess(a, b string) bool {
	pa, pb := serialPrefix(a), serialPrefix(b)
	if pa != pb {
		return pa < pb
	}
	na, oka := NumericSuffix(a)
	nb, okb := NumericSuffix(b)
	if oka != okb {
		return !oka
	}
	return na < nb
}

// SortSerials orders registration numbers naturally.
func SortSerials(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return serialLess(ids[i], ids[j])
	})
}
