package projections

import (
	"context"

	"waaranders/internal/adapters/storage/volunteer"
	"waaranders/internal/application/listutil"
	domainVolunteer "waaranders/internal/domain/volunteer"
)

// volunteerSortColumns are the columns the volunteer list may sort on.
var volunteerSortColumns = []string{"name", "email"}

// GetVolunteerListQuery carries query parameters.
type GetVolunteerListQuery struct {
	Params     listutil.Params
	ActiveOnly bool
}

// GetVolunteerListResult carries the query result.
type GetVolunteerListResult struct {
	Volunteers []domainVolunteer.Volunteer
	Page       listutil.PageInfo
}

// GetVolunteerListDeps holds dependencies for GetVolunteerList.
type GetVolunteerListDeps struct {
	VolunteerStore VolunteerStore
}

// QueryGetVolunteerList retrieves one page of volunteers.
// PRE: query.Params came from listutil.Parse
// POST: Returns the requested page plus paging info for the full result set
func QueryGetVolunteerList(ctx context.Context, query GetVolunteerListQuery, deps GetVolunteerListDeps) (GetVolunteerListResult, error) {
	filter := volunteer.ListFilter{
		ActiveOnly: query.ActiveOnly,
		Search:     query.Params.Search,
		Sort:       query.Params.Sort,
		Dir:        query.Params.Dir,
	}

	total, err := deps.VolunteerStore.Count(ctx, filter)
	if err != nil {
		return GetVolunteerListResult{}, err
	}

	page := listutil.NewPageInfo(query.Params.Page, query.Params.PerPage, total)
	filter.Limit = page.PerPage
	filter.Offset = page.Offset()

	vols, err := deps.VolunteerStore.List(ctx, filter)
	if err != nil {
		return GetVolunteerListResult{}, err
	}

	return GetVolunteerListResult{Volunteers: vols, Page: page}, nil
}

// VolunteerSortColumns returns the allowed sort columns for listutil.Parse.
func VolunteerSortColumns() []string {
	return volunteerSortColumns
}
