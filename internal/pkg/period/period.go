package period

import (
	"strconv"
	"strings"
)

// A YearMonth is a calendar month encoded as year*100+month so that
// chronological order matches numeric order (e.g. 202403 for March 2024).
type YearMonth int

func New(year, month int) YearMonth {
	return YearMonth(year*100 + month)
}

func (ym YearMonth) Year() int {
	return int(ym) / 100
}

func (ym YearMonth) Month() int {
	return int(ym) % 100
}

// Range is an inclusive [Start, End] month window.
type Range struct {
	Start YearMonth
	End   YearMonth
}

func (r Range) Contains(ym YearMonth) bool {
	return r.Start <= ym && ym <= r.End
}

// Unbounded covers every representable month.
func Unbounded() Range {
	return Range{Start: 0, End: 999999}
}

// ParseRange parses a flexible range string into an inclusive month window.
// Accepted formats:
//   - "" (or whitespace)        -> unbounded
//   - "2024"                    -> 202401..202412
//   - "2024-03"                 -> 202403..202403
//   - "2024-01..2024-06" (also ":", "," or "_" as separator)
//
// Parsing is lenient: a malformed side falls back to the widest bound on
// that side (year 0 month 1 for starts, year 9999 month 12 for ends)
// instead of returning an error.
func ParseRange(s string) Range {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unbounded()
	}

	var sep string
	for _, candidate := range []string{"..", ":", ",", "_"} {
		if strings.Contains(s, candidate) {
			sep = candidate
			break
		}
	}

	if sep == "" {
		start := parseOne(s, true)
		end := parseOne(s, false)
		// A single token means a single year or month window.
		if isYearToken(s) {
			return Range{Start: start, End: end}
		}
		return Range{Start: start, End: start}
	}

	left, right, _ := strings.Cut(s, sep)
	return Range{Start: parseOne(left, true), End: parseOne(right, false)}
}

// isYearToken reports whether s is exactly four digits. Signs are not
// digits, so "-123" is not a year.
func isYearToken(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseOne resolves a single token to a bound. Starts fall back to the
// minimum bound, ends to the maximum.
func parseOne(part string, isStart bool) YearMonth {
	fallback := New(9999, 12)
	if isStart {
		fallback = New(0, 1)
	}

	p := strings.TrimSpace(part)
	if p == "" {
		return fallback
	}
	if isYearToken(p) {
		y, _ := strconv.Atoi(p)
		if isStart {
			return New(y, 1)
		}
		return New(y, 12)
	}
	if yStr, mStr, ok := strings.Cut(p, "-"); ok {
		y, errY := strconv.Atoi(strings.TrimSpace(yStr))
		m, errM := strconv.Atoi(strings.TrimSpace(mStr))
		if errY == nil && errM == nil {
			return New(y, m)
		}
	}
	return fallback
}
