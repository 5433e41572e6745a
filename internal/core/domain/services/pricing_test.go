package services_test

import (
	"math"
	"testing"

	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewTariff(t *testing.T) {
	t.Run("valid rates", func(t *testing.T) {
		tariff, err := services.NewTariff(29, 600)

		require.NoError(t, err)
		assert.Equal(t, 29.0, tariff.AirPerKg())
		assert.Equal(t, 600.0, tariff.SeaPerM3())
	})

	t.Run("non positive rates are rejected", func(t *testing.T) {
		_, err := services.NewTariff(0, 600)
		require.Error(t, err)

		_, err = services.NewTariff(29, -1)
		require.Error(t, err)
	})
}

func Test_DefaultTariff(t *testing.T) {
	tariff := services.DefaultTariff()

	assert.Equal(t, 29.0, tariff.AirPerKg())
	assert.Equal(t, 600.0, tariff.SeaPerM3())
}

func Test_Tariff_LineTotal(t *testing.T) {
	tariff := services.DefaultTariff()

	t.Run("air reference scenario", func(t *testing.T) {
		// price 100, commission 25%, 5 kg, qty 2
		// unit = 100 * 1.25 = 125; freight = 5 * 29 = 145; (125+145)*2 = 540
		line := product.Line{
			Designation:       "Chargeur USB-C",
			DisplayedPrice:    100,
			CommissionPercent: 25,
			WeightKg:          5,
			Quantity:          2,
		}

		assert.Equal(t, 125.0, tariff.UnitTotal(line))
		assert.Equal(t, 145.0, tariff.Freight(line, shipping.Air))
		assert.Equal(t, 540.0, tariff.LineTotal(line, shipping.Air))
	})

	t.Run("sea freight prices by volume", func(t *testing.T) {
		// 50x40x60 cm = 0.12 m³; freight = 0.12 * 600 = 72
		line := product.Line{
			Designation:       "Groupe électrogène",
			DisplayedPrice:    300,
			CommissionPercent: 25,
			HeightCm:          50,
			WidthCm:           40,
			LengthCm:          60,
			Quantity:          1,
		}

		assert.InDelta(t, 72.0, tariff.Freight(line, shipping.Sea), 1e-9)
		assert.InDelta(t, 447.0, tariff.LineTotal(line, shipping.Sea), 1e-9)
	})

	t.Run("land freight prices like sea", func(t *testing.T) {
		line := product.Line{
			DisplayedPrice: 10,
			HeightCm:       100,
			WidthCm:        100,
			LengthCm:       100,
			Quantity:       1,
		}

		assert.InDelta(t,
			tariff.LineTotal(line, shipping.Sea),
			tariff.LineTotal(line, shipping.Land), 1e-9)
	})

	t.Run("zero quantity yields zero", func(t *testing.T) {
		line := product.Line{DisplayedPrice: 100, CommissionPercent: 25, WeightKg: 5, Quantity: 0}

		assert.Equal(t, 0.0, tariff.LineTotal(line, shipping.Air))
	})

	t.Run("linear in quantity", func(t *testing.T) {
		line := product.Line{DisplayedPrice: 100, CommissionPercent: 25, WeightKg: 5, Quantity: 1}
		one := tariff.LineTotal(line, shipping.Air)

		for _, qty := range []int{2, 3, 7} {
			line.Quantity = qty
			assert.InDelta(t, one*float64(qty), tariff.LineTotal(line, shipping.Air), 1e-9)
		}
	})

	t.Run("zero commission means displayed price only", func(t *testing.T) {
		line := product.Line{DisplayedPrice: 100, Quantity: 1}

		assert.Equal(t, 100.0, tariff.UnitTotal(line))
	})

	t.Run("non finite inputs degrade to zero", func(t *testing.T) {
		line := product.Line{
			DisplayedPrice:    math.NaN(),
			CommissionPercent: math.Inf(1),
			WeightKg:          math.NaN(),
			Quantity:          3,
		}

		assert.Equal(t, 0.0, tariff.LineTotal(line, shipping.Air))
	})
}

func Test_Tariff_GrandTotal(t *testing.T) {
	tariff := services.DefaultTariff()

	lines := []product.Line{
		{DisplayedPrice: 100, CommissionPercent: 25, WeightKg: 5, Quantity: 2},
		{DisplayedPrice: 40, CommissionPercent: 25, WeightKg: 1, Quantity: 1},
		{DisplayedPrice: 10, Quantity: 0},
	}

	var want float64
	for _, line := range lines {
		want += tariff.LineTotal(line, shipping.Air)
	}

	assert.InDelta(t, want, tariff.GrandTotal(lines, shipping.Air), 1e-9)
	assert.Equal(t, 0.0, tariff.GrandTotal(nil, shipping.Air))
}
