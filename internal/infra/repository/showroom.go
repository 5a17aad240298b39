package repository

import (
	"context"

	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
	"elite-drive/internal/domain/maintenance"
	"elite-drive/internal/infra"
	"elite-drive/internal/infra/repository/converter"
	sqlc "elite-drive/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ShowroomWriteQueries interface {
	CreateCar(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCarParams) (uuid.UUID, error)
	ListCarIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (uuid.UUID, error)
	CreateServiceRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceRecordParams) error
	TruncateShowroom(ctx context.Context, db sqlc.DBTX) error
}

// ShowroomRepository writes the catalogue side of the store: cars,
// customers and their service history.
type ShowroomRepository struct {
	queries ShowroomWriteQueries
	db      sqlc.DBTX
}

func NewShowroomRepository(queries ShowroomWriteQueries, db sqlc.DBTX) *ShowroomRepository {
	return &ShowroomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShowroomRepository) CreateCar(ctx context.Context, c *car.Car) (uuid.UUID, error) {
	params, err := converter.CarToCreateParams(c)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert car", err)
	}
	id, err := r.queries.CreateCar(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}
	return id, nil
}

func (r *ShowroomRepository) ListCarIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListCarIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car ids", err)
	}
	return ids, nil
}

func (r *ShowroomRepository) CreateCustomer(ctx context.Context, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.CreateCustomer(ctx, r.db, converter.CustomerToCreateParams(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *ShowroomRepository) CreateServiceRecord(ctx context.Context, rec *maintenance.Record) error {
	if err := r.queries.CreateServiceRecord(ctx, r.db, converter.ServiceRecordToCreateParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to create service record", err)
	}
	return nil
}

// Reset removes every row from every showroom table.
func (r *ShowroomRepository) Reset(ctx context.Context) error {
	if err := r.queries.TruncateShowroom(ctx, r.db); err != nil {
		return infra.WrapRepoErr("failed to reset showroom data", err)
	}
	return nil
}
