package catalog

import (
	"sort"

	"github.com/greenstall/greenmarket/internal/domain"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortLowToHigh SortKey = "low-to-high"
	SortHighToLow SortKey = "high-to-low"
	SortByDate    SortKey = "date"
)

// Sort returns a reordered copy of products; the input slice is never
// mutated. Price orderings are stable, so equal parsed prices keep their
// relative input order.
//
// SortByDate compares ids reverse-lexicographically. Ids are fixed-width
// decimal snowflakes assigned in increasing order, so newer products compare
// greater. There is no created-at column, id order is the recency order.
//
// The second return value tells the caller to close the sort-options menu.
// It is independent of the ordering itself and fires for every selection,
// recognized or not.
func Sort(products []domain.Product, key SortKey) ([]domain.Product, bool) {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) < ParsePrice(sorted[j].Price)
		})
	case SortHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) > ParsePrice(sorted[j].Price)
		})
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID > sorted[j].ID
		})
	default:
		// unknown key keeps the incoming order
	}
	return sorted, true
}
