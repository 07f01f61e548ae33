package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenstall/greenmarket/internal/domain"
)

func TestFilterByNameEmptyQuery(t *testing.T) {
	in := sampleProducts()
	got := FilterByName(in, "")
	assert.Equal(t, ids(in), ids(got))
}

func TestFilterByNameCaseInsensitive(t *testing.T) {
	in := sampleProducts()
	got := FilterByName(in, "TOM")
	assert.Equal(t, []string{"1001"}, ids(got))

	got = FilterByName(in, "an")
	assert.Equal(t, []string{"1003"}, ids(got)) // mango

	got = FilterByName(in, "xyz")
	assert.Empty(t, got)
}

func TestFilterByOwnerKeepsOrder(t *testing.T) {
	in := []domain.Product{
		{ID: "1", Email: "a@farm.in"},
		{ID: "2", Email: "b@farm.in"},
		{ID: "3", Email: "a@farm.in"},
		{ID: "4", Email: "c@farm.in"},
	}
	got := FilterByOwner(in, "a@farm.in")
	assert.Equal(t, []string{"1", "3"}, ids(got))

	assert.Empty(t, FilterByOwner(in, "nobody@farm.in"))
}

func TestViewFiltersThenSorts(t *testing.T) {
	in := []domain.Product{
		{ID: "1", Name: "green mango", Price: "₹90/kg"},
		{ID: "2", Name: "tomato", Price: "₹40/kg"},
		{ID: "3", Name: "mango", Price: "₹60/kg"},
	}
	got, closeMenu := View(in, "mango", SortLowToHigh)
	assert.Equal(t, []string{"3", "1"}, ids(got))
	assert.True(t, closeMenu)
}
