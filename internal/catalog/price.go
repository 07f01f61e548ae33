package catalog

import (
	"regexp"
	"strconv"
)

var priceNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// ParsePrice extracts the first numeric substring from a free-text price
// such as "₹50/kg" and returns it as a float. Prices are stored as free text
// so sellers can embed currency symbols and units; ranking still needs a
// number. This is a best-effort extraction, never a validator: text without
// any number yields 0 and sorts as cheapest.
func ParsePrice(price string) float64 {
	m := priceNumber.FindString(price)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
