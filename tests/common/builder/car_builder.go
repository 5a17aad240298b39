//go:build unit || e2e

package builder

import (
	"encoding/json"

	"elite-drive/internal/domain/car"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID       uuid.UUID
	Brand    string
	Model    string
	Year     int
	Price    float64
	Specs    map[string]any
	Category string
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:       uuid.New(),
		Brand:    "Ferrari",
		Model:    "SF90 Stradale",
		Year:     2024,
		Price:    625000,
		Specs:    map[string]any{"hp": float64(986), "engine": "V8 Hybrid"},
		Category: "Supercar",
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	return car.NewCar(b.Brand, b.Model, b.Year, b.Price, b.Specs, car.Category(b.Category))
}

func (b *CarBuilder) BuildInfra() sqlc.Cars {
	specs, _ := json.Marshal(b.Specs)
	return sqlc.Cars{
		ID:       b.ID,
		Brand:    b.Brand,
		Model:    b.Model,
		Year:     int32(b.Year),
		Price:    pgconv.NumericFromFloat64(b.Price),
		Specs:    specs,
		Category: b.Category,
	}
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		ID:       b.ID,
		Brand:    b.Brand,
		Model:    b.Model,
		Year:     b.Year,
		Price:    b.Price,
		Specs:    b.Specs,
		Category: b.Category,
	}
}

// Fluent builder methods
func (b *CarBuilder) WithBrand(brand string) *CarBuilder {
	b.Brand = brand
	return b
}

func (b *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	b.ID = id
	return b
}
