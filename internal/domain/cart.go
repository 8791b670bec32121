package domain

// InstallmentPlan selects how the customer wants to spread payments. Zero
// means full payment up front.
type InstallmentPlan int

const (
	InstallmentNone        InstallmentPlan = 0
	InstallmentThreeMonths InstallmentPlan = 3
	InstallmentSixMonths   InstallmentPlan = 6
)

func (p InstallmentPlan) Valid() bool {
	switch p {
	case InstallmentNone, InstallmentThreeMonths, InstallmentSixMonths:
		return true
	}
	return false
}

// SurchargePercent is the markup quoted on the product page for paying in
// installments: 10% over three months, 20% over six.
func (p InstallmentPlan) SurchargePercent() int {
	switch p {
	case InstallmentThreeMonths:
		return 10
	case InstallmentSixMonths:
		return 20
	}
	return 0
}

// Months reports the number of monthly payments, 0 for full payment.
func (p InstallmentPlan) Months() int {
	return int(p)
}

// LineItem is a product the customer committed to the cart, together with the
// chosen customization. Quantity is always 1: ordering the same set twice
// creates two separate lines.
type LineItem struct {
	Product     Product         `json:"product"`
	Quantity    int             `json:"quantity"`
	Fabric      string          `json:"fabric,omitempty"`
	Paint       WoodPaint       `json:"paint,omitempty"`
	Installment InstallmentPlan `json:"installment"`
}

// Cart holds the session's line items and checkout selections. It lives only
// as long as the session; nothing is persisted.
type Cart struct {
	Lines    []LineItem     `json:"lines"`
	Shipping ShippingMethod `json:"shipping"`
	Payment  PaymentMethod  `json:"payment"`
}

// TotalEGP sums the base prices of all lines in base currency units. The
// installment surcharge shown on the product page is intentionally not part
// of this sum; currency conversion happens once on the final amount.
func (c Cart) TotalEGP() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Product.PriceEGP
	}
	return total
}
