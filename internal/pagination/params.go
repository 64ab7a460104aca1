package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults and validation limits.
const (
	DefaultLimit  = 100
	MaxLimit      = 10000
	DefaultOffset = 0
	MinPage       = 1
	MaxPageSize   = 1000

	DefaultSortField = ""
	DefaultSortOrder = SortOrderAsc
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrNegativeLimit    = errors.New("limit cannot be negative")
	ErrNegativeOffset   = errors.New("offset cannot be negative")
	ErrNegativePage     = errors.New("page cannot be negative")
	ErrNegativePageSize = errors.New("page-size cannot be negative")
	ErrMixedModes       = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeRequired = errors.New("page-size must be specified when using page")
	ErrPageRequired     = errors.New("page must be specified when using page-size")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortExpr  = errors.New("invalid sort format: use 'field' or 'field:order'")
	ErrEmptySortField   = errors.New("sort field cannot be empty")
)

// Params holds pagination flags and provides validation.
type Params struct {
	// Limit is the maximum number of results (offset-based mode).
	Limit int

	// Offset is the number of results to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode, 0 = inactive).
	Page int

	// PageSize is the results per page (page-based mode).
	PageSize int

	// SortField is the field name to sort by.
	SortField string

	// SortOrder is "asc" or "desc".
	SortOrder string
}

// NewParams returns Params with offset-based defaults.
func NewParams() *Params {
	return &Params{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks bounds, mode exclusivity, and mode pairing.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return ErrNegativeLimit
	}
	if p.Offset < 0 {
		return ErrNegativeOffset
	}
	if p.Page < 0 {
		return ErrNegativePage
	}
	if p.PageSize < 0 {
		return ErrNegativePageSize
	}

	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageRequired
	}
	if p.PageSize == 0 && p.Page > 0 {
		return ErrPageSizeRequired
	}

	return nil
}

// IsPageBased reports whether page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// EffectiveRange returns the offset and limit regardless of mode.
func (p Params) EffectiveRange() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// TotalPages returns the page count for totalItems under the effective
// page size. Zero items means zero pages.
func (p Params) TotalPages(totalItems int) int {
	_, limit := p.EffectiveRange()
	if limit <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / limit
	if totalItems%limit > 0 {
		pages++
	}
	return pages
}

// Apply slices items according to the params. For page-based mode an
// offset past the end is capped to the last available page; for
// offset-based mode it yields an empty slice.
func Apply[T any](p Params, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.EffectiveRange()

	if p.IsPageBased() && offset >= len(items) {
		pageSize := p.PageSize
		if pageSize <= 0 {
			pageSize = len(items)
		}
		offset = ((len(items) - 1) / pageSize) * pageSize
	}

	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if limit == 0 || end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}

// sortPartsMax is the maximum number of parts in a sort expression.
const sortPartsMax = 2

// ParseSort parses "field" or "field:order" expressions.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	if expr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(expr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortExpr, expr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
