package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering applied to query results
type SortMode string

const (
	SortDefault    SortMode = "default"
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortRatingDesc SortMode = "rating-desc"
	SortNameAsc    SortMode = "name-asc"
)

// CategoryAll is the synthetic category meaning "no category filter"
const CategoryAll = "all"

// Filter describes a catalog query: free-text search, category, and sort.
// Search and category filters are conjunctive.
type Filter struct {
	Search   string
	Category string
	Sort     SortMode
}

// Search filters and sorts the given products without mutating the input.
// Text matching is a case-insensitive substring test against name,
// description, and category; the search text is taken verbatim, whitespace
// included. All sort modes are stable so that equal keys keep their
// catalog-relative order.
func Search(products []Product, f Filter) []Product {
	result := make([]Product, 0, len(products))

	query := strings.ToLower(f.Search)
	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortNameAsc:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(result, func(i, j int) bool {
			return c.CompareString(result[i].Name, result[j].Name) < 0
		})
	default:
		// Catalog order
	}

	return result
}

// Categories returns the distinct categories present in the catalog in
// first-seen order, prefixed with the synthetic "all" entry.
func Categories(products []Product) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func matchesQuery(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}
