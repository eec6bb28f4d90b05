// Package discount computes the read-time discount applied to catalog prices.
package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

const PriceThresholdCents int64 = 500

var (
	priceRate   = decimal.New(10, -2) // 0.10
	weekdayRate = decimal.New(5, -2)  // 0.05
)

// Weekday returns the day of week of t with Monday = 0 ... Sunday = 6.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Rate returns the fractional discount for a price on the reference date.
// Prices of at least 500 cents get 0.10, Tuesday to Thursday add 0.05.
func Rate(priceCents int64, ref time.Time) decimal.Decimal {
	rate := decimal.Zero
	if priceCents >= PriceThresholdCents {
		rate = rate.Add(priceRate)
	}
	if wd := Weekday(ref); wd >= 1 && wd <= 3 {
		rate = rate.Add(weekdayRate)
	}
	return rate
}

// Calculate returns the discount amount in cents.
func Calculate(priceCents int64, ref time.Time) decimal.Decimal {
	return decimal.NewFromInt(priceCents).Mul(Rate(priceCents, ref))
}
