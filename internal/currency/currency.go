// Package currency converts catalog prices, kept in Egyptian pounds, into the
// customer's display currency. Rates are a fixed table keyed by country.
package currency

import (
	"fmt"
	"math"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

// Rate pairs a multiplicative conversion rate with display metadata.
type Rate struct {
	Rate   float64 `json:"rate"`
	Symbol string  `json:"symbol"`
	Code   string  `json:"code"`
}

// Base is the factory's own currency: Egyptian pounds, rate 1.
var Base = Rate{Rate: 1, Symbol: "ج.م", Code: "EGP"}

var table = map[domain.Country]Rate{
	domain.CountryEgypt:       Base,
	domain.CountrySaudiArabia: {Rate: 0.076, Symbol: "ر.س", Code: "SAR"},
	domain.CountryUAE:         {Rate: 0.074, Symbol: "د.إ", Code: "AED"},
	domain.CountryUSA:         {Rate: 0.020, Symbol: "$", Code: "USD"},
	domain.CountryOther:       {Rate: 0.020, Symbol: "$", Code: "USD"},
}

// ForCountry returns the rate for the given country. Unrecognized countries
// get the same treatment as "other".
func ForCountry(c domain.Country) Rate {
	if r, ok := table[c]; ok {
		return r
	}
	return table[domain.CountryOther]
}

// ForUser resolves the display rate for a session. Without a logged-in user
// everything is priced in the base currency.
func ForUser(u *domain.User) Rate {
	if u == nil {
		return Base
	}
	return ForCountry(u.Country)
}

// Convert applies the rate to an amount in base units. Callers must sum in
// base units first and convert once; converting per line compounds rounding
// error.
func Convert(amountEGP int64, r Rate) float64 {
	return float64(amountEGP) * r.Rate
}

// Round2 rounds a converted amount to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Display formats a base amount in the given rate's currency, rounded to two
// decimals, with the currency symbol appended.
func Display(amountEGP int64, r Rate) string {
	return fmt.Sprintf("%.2f %s", Convert(amountEGP, r), r.Symbol)
}

// InstallmentQuote describes what paying a base amount over a plan would
// cost in the display currency. It is shown on the product page only and
// never feeds into the cart total.
type InstallmentQuote struct {
	Plan             domain.InstallmentPlan `json:"months"`
	SurchargePercent int                    `json:"surchargePercent"`
	Total            float64                `json:"total"`
	Monthly          float64                `json:"monthly"`
}

// QuoteInstallment computes the surcharged total and per-month payment for a
// plan. The no-installment plan quotes the plain converted price.
func QuoteInstallment(amountEGP int64, plan domain.InstallmentPlan, r Rate) InstallmentQuote {
	total := Convert(amountEGP, r) * (1 + float64(plan.SurchargePercent())/100)
	q := InstallmentQuote{
		Plan:             plan,
		SurchargePercent: plan.SurchargePercent(),
		Total:            Round2(total),
	}
	if months := plan.Months(); months > 0 {
		q.Monthly = Round2(total / float64(months))
	} else {
		q.Monthly = q.Total
	}
	return q
}
