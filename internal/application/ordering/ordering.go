// Package ordering provides the deterministic display order for task-like
// records: due date first (absent dates last), then a caller-selected
// secondary key, then status, then text.
package ordering

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Mode selects the secondary sort key.
type Mode string

const (
	// ByPriority ranks high before normal before low within the same date.
	ByPriority Mode = "priority"
	// ByAssignee orders by assignee display name within the same date.
	ByAssignee Mode = "assignee"
)

// ParseMode maps a raw query value to a Mode. Unknown values fall back to
// ByPriority so a mangled URL never breaks the list view.
func ParseMode(raw string) Mode {
	if Mode(raw) == ByAssignee {
		return ByAssignee
	}
	return ByPriority
}

// Item is a record the engine can order. Due returns the date in
// "YYYY-MM-DD" form; lexicographic order on that format equals
// chronological order.
type Item interface {
	Due() (string, bool)
	PriorityRank() int
	AssigneeLabel() string
	StatusRank() int
	SortText() string
}

// Sort returns the items in display order. The input slice is not modified.
// POST: result holds every input item exactly once
func Sort[T Item](items []T, mode Mode) []T {
	out := make([]T, len(items))
	copy(out, items)
	// A Collator keeps internal buffers, so each call gets its own
	c := collate.New(language.Dutch)
	sort.SliceStable(out, func(i, j int) bool {
		return less(c, out[i], out[j], mode)
	})
	return out
}

func less(c *collate.Collator, a, b Item, mode Mode) bool {
	// Due date ascending, items without one last
	aDue, aHas := a.Due()
	bDue, bHas := b.Due()
	switch {
	case aHas && !bHas:
		return true
	case !aHas && bHas:
		return false
	case aHas && bHas && aDue != bDue:
		return aDue < bDue
	}

	switch mode {
	case ByAssignee:
		aLabel := strings.ToLower(a.AssigneeLabel())
		bLabel := strings.ToLower(b.AssigneeLabel())
		if aLabel != bLabel {
			return aLabel < bLabel
		}
	default:
		if a.PriorityRank() != b.PriorityRank() {
			return a.PriorityRank() < b.PriorityRank()
		}
	}

	if a.StatusRank() != b.StatusRank() {
		return a.StatusRank() < b.StatusRank()
	}

	return c.CompareString(a.SortText(), b.SortText()) < 0
}
