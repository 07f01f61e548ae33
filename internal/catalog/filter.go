package catalog

import (
	"strings"

	"github.com/greenstall/greenmarket/internal/domain"
)

// FilterByName returns the subset of products whose name contains query,
// case-insensitively. The empty query returns the input list unchanged.
func FilterByName(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByOwner keeps only the products owned by the farmer with the given
// email, preserving relative order.
func FilterByOwner(products []domain.Product, email string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.OwnedBy(email) {
			out = append(out, p)
		}
	}
	return out
}

// View derives the display list: search narrows first, then sort orders the
// narrowed subset. The boolean is the Sort close-menu signal.
func View(products []domain.Product, query string, key SortKey) ([]domain.Product, bool) {
	return Sort(FilterByName(products, query), key)
}
