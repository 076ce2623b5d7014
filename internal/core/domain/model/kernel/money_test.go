package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	t.Run("exact values pass through", func(t *testing.T) {
		assert.Equal(t, kernel.Money(200), kernel.RoundHalfUp(200.0))
		assert.Equal(t, kernel.Money(0), kernel.RoundHalfUp(0.0))
		assert.Equal(t, kernel.Money(-120), kernel.RoundHalfUp(-120.0))
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		assert.Equal(t, kernel.Money(3), kernel.RoundHalfUp(2.5))
		assert.Equal(t, kernel.Money(2), kernel.RoundHalfUp(2.4))
		assert.Equal(t, kernel.Money(-3), kernel.RoundHalfUp(-2.5))
		assert.Equal(t, kernel.Money(-2), kernel.RoundHalfUp(-2.4))
	})
}

func TestPercentOf(t *testing.T) {
	t.Run("exact percentages", func(t *testing.T) {
		assert.Equal(t, kernel.Money(200), kernel.PercentOf(1000, 20))
		assert.Equal(t, kernel.Money(120), kernel.PercentOf(1200, 10))
		assert.Equal(t, kernel.Money(176), kernel.PercentOf(880, 20))
	})

	t.Run("rounding applied once, half up", func(t *testing.T) {
		// 17.5% of 999 = 174.825 -> 175
		assert.Equal(t, kernel.Money(175), kernel.PercentOf(999, 17.5))
		// 20% of 33 = 6.6 -> 7
		assert.Equal(t, kernel.Money(7), kernel.PercentOf(33, 20))
		// 10% of 5 = 0.5 -> 1
		assert.Equal(t, kernel.Money(1), kernel.PercentOf(5, 10))
	})

	t.Run("negative amounts mirror positive rounding", func(t *testing.T) {
		assert.Equal(t, kernel.Money(-1), kernel.PercentOf(-5, 10))
		assert.Equal(t, kernel.Money(-175), kernel.PercentOf(-999, 17.5))
	})
}
