package catalog

import (
	"net/url"

	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/pkg/common"
)

// PaymentLink builds the upi:// deep link used to pay for a product.
// Returns the empty string when the product carries no UPI id. Amount "0"
// lets the payment app ask the buyer for the amount.
func PaymentLink(p domain.Product, payee, amount string) string {
	if p.Upi == "" {
		return ""
	}
	q := url.Values{}
	q.Set("pa", p.Upi)
	q.Set("pn", common.IfEmptyStr(payee, "Farmer"))
	q.Set("am", common.IfEmptyStr(amount, "0"))
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode()
}
