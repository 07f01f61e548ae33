package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstall/greenmarket/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1001", Name: "tomato", Price: "₹40/kg"},
		{ID: "1002", Name: "onion", Price: "₹32/kg"},
		{ID: "1003", Name: "mango", Price: "₹120/kg"},
		{ID: "1004", Name: "spinach", Price: "free"},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSortLowToHigh(t *testing.T) {
	sorted, closeMenu := Sort(sampleProducts(), SortLowToHigh)
	assert.Equal(t, []string{"1004", "1002", "1001", "1003"}, ids(sorted))
	assert.True(t, closeMenu)
}

func TestSortHighToLow(t *testing.T) {
	sorted, _ := Sort(sampleProducts(), SortHighToLow)
	assert.Equal(t, []string{"1003", "1001", "1002", "1004"}, ids(sorted))
}

func TestSortByDateNewestFirst(t *testing.T) {
	sorted, _ := Sort(sampleProducts(), SortByDate)
	assert.Equal(t, []string{"1004", "1003", "1002", "1001"}, ids(sorted))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	in := sampleProducts()
	sorted, closeMenu := Sort(in, SortKey("alphabetical"))
	assert.Equal(t, ids(in), ids(sorted))
	// the menu still closes on an unrecognized selection
	assert.True(t, closeMenu)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sampleProducts()
	want := ids(in)
	_, _ = Sort(in, SortLowToHigh)
	_, _ = Sort(in, SortHighToLow)
	_, _ = Sort(in, SortByDate)
	assert.Equal(t, want, ids(in))
}

func TestSortIdempotence(t *testing.T) {
	once, _ := Sort(sampleProducts(), SortLowToHigh)
	twice, _ := Sort(once, SortLowToHigh)
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortReversal(t *testing.T) {
	asc, _ := Sort(sampleProducts(), SortLowToHigh)
	desc, _ := Sort(asc, SortHighToLow)
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortStability(t *testing.T) {
	// equal parsed prices keep their relative input order under either sort
	in := []domain.Product{
		{ID: "2001", Name: "a", Price: "₹50/kg"},
		{ID: "2002", Name: "b", Price: "50"},
		{ID: "2003", Name: "c", Price: "Rs 50"},
	}
	asc, _ := Sort(in, SortLowToHigh)
	assert.Equal(t, []string{"2001", "2002", "2003"}, ids(asc))
	desc, _ := Sort(in, SortHighToLow)
	assert.Equal(t, []string{"2001", "2002", "2003"}, ids(desc))
}
