package discount

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

var (
	monday    = date(2000, time.January, 3)
	tuesday   = date(2000, time.January, 4)
	wednesday = date(2000, time.January, 5)
	thursday  = date(2000, time.January, 6)
	friday    = date(2000, time.January, 7)
	sunday    = date(2000, time.January, 9)
)

func TestWeekday(t *testing.T) {
	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 1, Weekday(tuesday))
	assert.Equal(t, 3, Weekday(thursday))
	assert.Equal(t, 4, Weekday(friday))
	assert.Equal(t, 6, Weekday(sunday))
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		ref   time.Time
		want  string
	}{
		{"200 on monday", 200, monday, "0"},
		{"200 on tuesday", 200, tuesday, "10"},
		{"500 on monday", 500, monday, "50"},
		{"500 on tuesday", 500, tuesday, "75"},
		{"230 on tuesday", 230, tuesday, "11.5"},
		{"499 on wednesday", 499, wednesday, "24.95"},
		{"1000 on thursday", 1000, thursday, "150"},
		{"1000 on friday", 1000, friday, "100"},
		{"1000 on sunday", 1000, sunday, "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.price, tt.ref)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculateZeroOutsideRules(t *testing.T) {
	days := []time.Time{monday, friday, date(2000, time.January, 8), sunday}
	for _, day := range days {
		for _, price := range []int64{0, 1, 230, 499} {
			assert.True(t, Calculate(price, day).IsZero(), "price %d on %s", price, day.Weekday())
		}
	}
}

func TestRateUpperBound(t *testing.T) {
	max := decimal.New(15, -2)
	for d := 0; d < 7; d++ {
		ref := monday.AddDate(0, 0, d)
		for _, price := range []int64{0, 499, 500, 100000} {
			assert.True(t, Rate(price, ref).LessThanOrEqual(max))
		}
	}
	assert.True(t, Rate(500, tuesday).Equal(max))
}
