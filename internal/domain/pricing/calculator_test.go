package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	calc := NewDefaultCalculator()

	t.Run("flat shipping below the threshold", func(t *testing.T) {
		summary := calc.Summarize(decimal.NewFromInt(40))

		assert.True(t, summary.Shipping.Equal(decimal.NewFromFloat(9.99)))
		assert.True(t, summary.Tax.Equal(decimal.NewFromFloat(3.20)))
		assert.True(t, summary.Total.Equal(decimal.NewFromFloat(53.19)))
	})

	t.Run("free shipping above the threshold", func(t *testing.T) {
		summary := calc.Summarize(decimal.NewFromInt(60))

		assert.True(t, summary.Shipping.IsZero())
		assert.True(t, summary.Tax.Equal(decimal.NewFromFloat(4.80)))
		assert.True(t, summary.Total.Equal(decimal.NewFromFloat(64.80)))
	})

	t.Run("threshold is strictly greater than", func(t *testing.T) {
		summary := calc.Summarize(decimal.NewFromInt(50))
		assert.True(t, summary.Shipping.Equal(decimal.NewFromFloat(9.99)))

		justOver := calc.Summarize(decimal.NewFromFloat(50.01))
		assert.True(t, justOver.Shipping.IsZero())
	})

	t.Run("zero subtotal still pays flat shipping", func(t *testing.T) {
		summary := calc.Summarize(decimal.Zero)

		assert.True(t, summary.Subtotal.IsZero())
		assert.True(t, summary.Tax.IsZero())
		assert.True(t, summary.Total.Equal(decimal.NewFromFloat(9.99)))
	})

	t.Run("no precision loss across repeated recomputation", func(t *testing.T) {
		subtotal := decimal.NewFromFloat(33.33)
		first := calc.Summarize(subtotal)
		second := calc.Summarize(first.Subtotal)

		assert.True(t, first.Total.Equal(second.Total))
		assert.True(t, first.Tax.Equal(decimal.NewFromFloat(2.6664)))
	})

	t.Run("custom pricing constants", func(t *testing.T) {
		custom := NewCalculator(
			decimal.NewFromInt(100),
			decimal.NewFromInt(5),
			decimal.NewFromFloat(0.10),
		)
		summary := custom.Summarize(decimal.NewFromInt(80))

		assert.True(t, summary.Shipping.Equal(decimal.NewFromInt(5)))
		assert.True(t, summary.Tax.Equal(decimal.NewFromInt(8)))
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(93)))
	})
}
