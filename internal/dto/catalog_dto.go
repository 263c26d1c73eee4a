package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SortOption enumerates the storefront sort orders.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortPopularity   SortOption = "popularity"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ProductFilter is the decoded set of constraints driving a catalog query.
// Nil price bounds mean "unbounded"; an empty Platforms slice means "any".
type ProductFilter struct {
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Platforms    []string
	Sort         SortOption
	Page         int
	Limit        int
}

// DecodeProductFilter coerces flat string query parameters into a typed
// filter. It is deliberately forgiving: unparseable numbers leave the bound
// unset, an unknown sort falls back to newest, and page/limit below 1 snap
// to their defaults. It never fails.
func DecodeProductFilter(params url.Values) ProductFilter {
	f := ProductFilter{
		CategorySlug: params.Get("category"),
		Sort:         SortNewest,
		Page:         DefaultPage,
		Limit:        DefaultLimit,
	}

	if v, err := decimal.NewFromString(params.Get("min_price")); err == nil {
		f.MinPrice = &v
	}
	if v, err := decimal.NewFromString(params.Get("max_price")); err == nil {
		f.MaxPrice = &v
	}

	if raw := params.Get("platforms"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Platforms = append(f.Platforms, p)
			}
		}
	}

	switch s := SortOption(params.Get("sort")); s {
	case SortNewest, SortPriceLowHigh, SortPriceHighLow, SortPopularity:
		f.Sort = s
	}

	if n, err := strconv.Atoi(params.Get("page")); err == nil && n >= 1 {
		f.Page = n
	}
	if n, err := strconv.Atoi(params.Get("limit")); err == nil && n >= 1 {
		f.Limit = n
	}

	return f
}

// Offset returns the 0-based slice offset implied by page/limit.
func (f ProductFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	return (page - 1) * f.PageSize()
}

// PageSize returns the effective limit, guarding against zero values from
// hand-built filters.
func (f ProductFilter) PageSize() int {
	if f.Limit < 1 {
		return DefaultLimit
	}
	return f.Limit
}
