package cotation_test

import (
	"testing"
	"time"

	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewCotation(t *testing.T) {
	t.Run("valid cotation", func(t *testing.T) {
		id := kernel.NewUUID()
		clientID := kernel.NewUUID()
		createdAt := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)
		lines := []product.Line{{Designation: "Groupe électrogène", DisplayedPrice: 300, CommissionPercent: 25, Quantity: 1, HeightCm: 50, WidthCm: 40, LengthCm: 60}}

		c, err := cotation.NewCotation(id, clientID, "M. Ilunga", shipping.Sea, lines, 519, createdAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, clientID, c.ClientID())
		assert.Equal(t, "M. Ilunga", c.ClientName())
		assert.Equal(t, shipping.Sea, c.Mode())
		assert.Equal(t, lines, c.Lines())
		assert.Equal(t, 519.0, c.TotalGlobal())
		assert.Equal(t, createdAt, c.CreatedAt())
	})

	t.Run("empty client name", func(t *testing.T) {
		_, err := cotation.NewCotation(
			kernel.NewUUID(), kernel.NewUUID(), "", shipping.Air, nil, 0, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("land freight is not quotable", func(t *testing.T) {
		_, err := cotation.NewCotation(
			kernel.NewUUID(), kernel.NewUUID(), "M. Ilunga", shipping.Land, nil, 0, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero creation timestamp", func(t *testing.T) {
		_, err := cotation.NewCotation(
			kernel.NewUUID(), kernel.NewUUID(), "M. Ilunga", shipping.Air, nil, 0, time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_Cotation_Validate(t *testing.T) {
	t.Run("zero value cotation is rejected", func(t *testing.T) {
		var c cotation.Cotation
		assert.ErrorIs(t, c.Validate(), cotation.ErrCotationIsNotConstructed)
	})

	t.Run("nil cotation is rejected", func(t *testing.T) {
		var c *cotation.Cotation
		assert.ErrorIs(t, c.Validate(), cotation.ErrCotationIsNotConstructed)
	})
}

func Test_Cotation_Editing(t *testing.T) {
	c, err := cotation.NewCotation(
		kernel.NewUUID(), kernel.NewUUID(), "M. Ilunga", shipping.Air,
		[]product.Line{{Designation: "Téléphone", DisplayedPrice: 120, Quantity: 2}},
		300, time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	newLines := []product.Line{{Designation: "Téléphone", DisplayedPrice: 120, Quantity: 3}}
	c.SetLines(newLines)
	c.SetTotalGlobal(450)

	assert.Equal(t, newLines, c.Lines())
	assert.Equal(t, 450.0, c.TotalGlobal())
}
