package storage

import (
	"regexp"
	"strconv"
)

// Approximate dates arrive as free text ("about 1850", "1850-03-12",
// "c. 1850"). Two derived values make them queryable without constraining
// what callers may write: a year for range filters and an orderable key for
// event sorting.

var (
	yearPattern = regexp.MustCompile(`\b(\d{4})\b`)
	datePattern = regexp.MustCompile(`\b(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?\b`)
)

// approxYear extracts the first four-digit year from an approximate date
// string. Returns false when no year is present.
func approxYear(s string) (int, bool) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}

// dateSortKey collapses an approximate date to an orderable integer
// (year*10000 + month*100 + day). Missing month/day components sort before
// specified ones within the same year; strings with no year at all get no
// key and sort after every dated value.
func dateSortKey(s string) (int, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	key, _ := strconv.Atoi(m[1])
	key *= 10000
	if m[2] != "" {
		month, _ := strconv.Atoi(m[2])
		key += month * 100
	}
	if m[3] != "" {
		day, _ := strconv.Atoi(m[3])
		key += day
	}
	return key, true
}

// nullableInt maps a (value, ok) pair to a driver-friendly nullable.
func nullableInt(v int, ok bool) any {
	if !ok {
		return nil
	}
	return v
}
