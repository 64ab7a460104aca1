package pagination

// Meta describes one page of results for output footers and JSON
// envelopes.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta computes metadata from params and the total result count
// before slicing.
func NewMeta(params Params, totalItems int) Meta {
	_, limit := params.EffectiveRange()
	pageSize := limit
	if pageSize <= 0 {
		// No explicit size: everything fits on a single page.
		pageSize = totalItems
	}

	currentPage := params.Page
	if currentPage == 0 {
		if params.Offset > 0 && pageSize > 0 {
			currentPage = (params.Offset / pageSize) + 1
		} else {
			currentPage = 1
		}
	}

	totalPages := 0
	if pageSize > 0 && totalItems > 0 {
		totalPages = totalItems / pageSize
		if totalItems%pageSize > 0 {
			totalPages++
		}
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
