//go:build unit

package car_test

import (
	"testing"

	"elite-drive/internal/domain/car"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type carInput struct {
	brand, model string
	year         int
	price        float64
	category     car.Category
}

func validInput() carInput {
	return carInput{brand: "Ferrari", model: "SF90 Stradale", year: 2024, price: 625000, category: car.CategorySupercar}
}

func TestNewCar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		in := validInput()
		actual, err := car.NewCar(in.brand, in.model, in.year, in.price, car.Specs{"hp": 986}, in.category)
		require.NoError(t, err)
		assert.Equal(t, "Ferrari", actual.Brand())
		assert.Equal(t, 986, actual.Specs()["hp"])
		assert.Equal(t, car.CategorySupercar, actual.Category())
	})

	t.Run("nil specs become empty", func(t *testing.T) {
		in := validInput()
		actual, err := car.NewCar(in.brand, in.model, in.year, in.price, nil, in.category)
		require.NoError(t, err)
		assert.NotNil(t, actual.Specs())
	})

	cases := []struct {
		name   string
		mutate func(*carInput)
		errIs  error
	}{
		{name: "blank brand", mutate: func(c *carInput) { c.brand = "  " }, errIs: car.ErrEmptyBrand},
		{name: "blank model", mutate: func(c *carInput) { c.model = "" }, errIs: car.ErrEmptyModel},
		{name: "zero year", mutate: func(c *carInput) { c.year = 0 }, errIs: car.ErrInvalidYear},
		{name: "negative price", mutate: func(c *carInput) { c.price = -1 }, errIs: car.ErrNegativePrice},
		{name: "unknown category", mutate: func(c *carInput) { c.category = "Truck" }, errIs: car.ErrInvalidCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := car.NewCar(in.brand, in.model, in.year, in.price, nil, in.category)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
