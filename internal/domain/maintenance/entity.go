package maintenance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCar       = errors.New("service record must belong to a car")
	ErrEmptyDescription = errors.New("description is required")
	ErrNegativeCost     = errors.New("cost cannot be negative")
)

// Record is one entry of a car's service history.
type Record struct {
	id             uuid.UUID
	carID          uuid.UUID
	date           time.Time
	description    string
	cost           float64
	nextServiceDue bool
}

func NewRecord(carID uuid.UUID, date time.Time, description string, cost float64, nextServiceDue bool) (*Record, error) {
	description = strings.TrimSpace(description)
	if carID == uuid.Nil {
		return nil, ErrMissingCar
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if cost < 0 {
		return nil, ErrNegativeCost
	}
	return &Record{
		id:             uuid.New(),
		carID:          carID,
		date:           date,
		description:    description,
		cost:           cost,
		nextServiceDue: nextServiceDue,
	}, nil
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) CarID() uuid.UUID     { return r.carID }
func (r *Record) Date() time.Time      { return r.date }
func (r *Record) Description() string  { return r.description }
func (r *Record) Cost() float64        { return r.cost }
func (r *Record) NextServiceDue() bool { return r.nextServiceDue }
