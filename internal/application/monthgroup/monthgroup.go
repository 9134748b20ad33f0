// Package monthgroup partitions dated records into calendar-month buckets
// with Dutch display labels for the calendar view.
package monthgroup

import (
	"sort"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

// DefaultLocale is the locale all calendar labels use.
const DefaultLocale = monday.LocaleNlNL

// Dated is a record that occurs on a calendar date.
type Dated interface {
	OccursOn() time.Time
}

// Key identifies one calendar month.
type Key struct {
	Year  int
	Month time.Month
}

// Group is one month's bucket of items.
type Group[T Dated] struct {
	Key   Key
	Title string // e.g. "Maart 2025"
	Items []T
}

// Formatter renders localized month and day labels. Month and weekday names
// are lowercase in Dutch; labels capitalize the first letter for display.
type Formatter struct {
	Locale monday.Locale
}

// MonthTitle returns the long month-plus-year label, e.g. "Maart 2025".
func (f Formatter) MonthTitle(d time.Time) string {
	return capitalize(monday.Format(d, "January 2006", f.Locale))
}

// DayLabel returns the weekday-plus-date label, e.g. "Zaterdag 15 mrt".
func (f Formatter) DayLabel(d time.Time) string {
	return capitalize(monday.Format(d, "Monday 2 Jan", f.Locale))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ByMonth groups items per calendar month in chronological order.
// The input is re-sorted by date; equal dates keep their relative order.
// PRE: every item's OccursOn is non-zero
// POST: every input item appears in exactly one group; no empty groups
func ByMonth[T Dated](items []T, f Formatter) []Group[T] {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccursOn().Before(sorted[j].OccursOn())
	})

	var groups []Group[T]
	index := make(map[Key]int)
	for _, item := range sorted {
		d := item.OccursOn()
		key := Key{Year: d.Year(), Month: d.Month()}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[T]{Key: key, Title: f.MonthTitle(d)})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
