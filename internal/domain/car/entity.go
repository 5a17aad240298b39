package car

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyBrand      = errors.New("brand is required")
	ErrEmptyModel      = errors.New("model is required")
	ErrInvalidYear     = errors.New("year must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidCategory = errors.New("invalid category")
)

type Category string

const (
	CategorySupercar Category = "Supercar"
	CategoryGT       Category = "GT"
	CategorySedan    Category = "Sedan"
	CategoryLuxury   Category = "Luxury"
	CategoryHypercar Category = "Hypercar"
)

func NewCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategorySupercar, CategoryGT, CategorySedan, CategoryLuxury, CategoryHypercar:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string { return string(c) }

// Specs is a free-form attribute bag such as {"hp": 986, "engine": "V8 Hybrid"}.
type Specs map[string]any

// Car is immutable once created.
type Car struct {
	id       uuid.UUID
	brand    string
	model    string
	year     int
	price    float64
	specs    Specs
	category Category
}

func NewCar(brand, model string, year int, price float64, specs Specs, category Category) (*Car, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	if model == "" {
		return nil, ErrEmptyModel
	}
	if year <= 0 {
		return nil, ErrInvalidYear
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if _, err := NewCategory(string(category)); err != nil {
		return nil, err
	}
	if specs == nil {
		specs = Specs{}
	}

	return &Car{
		id:       uuid.New(),
		brand:    brand,
		model:    model,
		year:     year,
		price:    price,
		specs:    specs,
		category: category,
	}, nil
}

func (c *Car) ID() uuid.UUID      { return c.id }
func (c *Car) Brand() string      { return c.brand }
func (c *Car) Model() string      { return c.model }
func (c *Car) Year() int          { return c.year }
func (c *Car) Price() float64     { return c.price }
func (c *Car) Specs() Specs       { return c.specs }
func (c *Car) Category() Category { return c.category }
