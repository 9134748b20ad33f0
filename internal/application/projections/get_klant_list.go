package projections

import (
	"context"

	"waaranders/internal/adapters/storage/klant"
	"waaranders/internal/application/listutil"
	domainKlant "waaranders/internal/domain/klant"
)

// klantSortColumns are the columns the klant list may sort on.
var klantSortColumns = []string{"name", "city"}

// GetKlantListQuery carries query parameters.
type GetKlantListQuery struct {
	Params listutil.Params
	City   string // exact city filter
}

// GetKlantListResult carries the query result.
type GetKlantListResult struct {
	Klanten []domainKlant.Klant
	Page    listutil.PageInfo
}

// GetKlantListDeps holds dependencies for GetKlantList.
type GetKlantListDeps struct {
	KlantStore KlantStore
}

// QueryGetKlantList retrieves one page of klanten.
// PRE: query.Params came from listutil.Parse
// POST: Returns the requested page plus paging info for the full result set
func QueryGetKlantList(ctx context.Context, query GetKlantListQuery, deps GetKlantListDeps) (GetKlantListResult, error) {
	filter := klant.ListFilter{
		Search: query.Params.Search,
		City:   query.City,
		Sort:   query.Params.Sort,
		Dir:    query.Params.Dir,
	}

	total, err := deps.KlantStore.Count(ctx, filter)
	if err != nil {
		return GetKlantListResult{}, err
	}

	// PageInfo clamps out-of-range pages before the offset is computed
	page := listutil.NewPageInfo(query.Params.Page, query.Params.PerPage, total)
	filter.Limit = page.PerPage
	filter.Offset = page.Offset()

	klanten, err := deps.KlantStore.List(ctx, filter)
	if err != nil {
		return GetKlantListResult{}, err
	}

	return GetKlantListResult{Klanten: klanten, Page: page}, nil
}

// KlantSortColumns returns the allowed sort columns for listutil.Parse.
func KlantSortColumns() []string {
	return klantSortColumns
}
