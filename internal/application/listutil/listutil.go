// Package listutil parses the query parameters shared by the admin list
// screens (klanten, vrijwilligers) and computes pagination metadata.
package listutil

import (
	"net/url"
	"strconv"
)

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 25

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 25, 50, 100}

// Params carries the list view parameters parsed from a request.
type Params struct {
	Page    int    // 1-indexed page number
	PerPage int    // rows per page
	Sort    string // column name, "" when not set or not allowed
	Dir     string // "asc" or "desc"
	Search  string // free-text search query
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed), clamped to valid range
	PerPage    int
	Total      int // total matching rows
	TotalPages int // ceil(Total / PerPage), at least 1
}

// Parse extracts page, per_page, sort, dir and q from URL query values.
// Unknown sort columns are dropped rather than passed through, so callers
// can interpolate Sort into ORDER BY safely.
// PRE: allowedSortCols lists the sortable column names
// POST: returns Params with defaults applied; Dir is always "asc" or "desc"
func Parse(q url.Values, allowedSortCols []string) Params {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !validPerPage(perPage) {
		perPage = DefaultPerPage
	}

	sort := q.Get("sort")
	if !allowed(sort, allowedSortCols) {
		sort = ""
	}
	dir := q.Get("dir")
	if dir != "asc" && dir != "desc" {
		dir = "asc"
	}

	return Params{
		Page:    page,
		PerPage: perPage,
		Sort:    sort,
		Dir:     dir,
		Search:  q.Get("q"),
	}
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages >= 1 and Page clamped into range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Offset returns the SQL OFFSET for the current page.
// PRE: PageInfo is valid
// POST: returns (Page-1) * PerPage
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// HasPrev returns true if there is a previous page.
func (p PageInfo) HasPrev() bool {
	return p.Page > 1
}

// HasNext returns true if there is a next page.
func (p PageInfo) HasNext() bool {
	return p.Page < p.TotalPages
}

func validPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func allowed(col string, cols []string) bool {
	for _, c := range cols {
		if col == c {
			return true
		}
	}
	return false
}
