package readstore

import (
	"context"
	"encoding/json"

	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadQueries interface {
	ListCars(ctx context.Context, db sqlc.DBTX) ([]sqlc.Cars, error)
	ListCarsByBrandPattern(ctx context.Context, db sqlc.DBTX, pattern string) ([]sqlc.Cars, error)
	ListCarsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Cars, error)
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cars, error)
}

type CarReadStore struct {
	queries CarReadQueries
	db      sqlc.DBTX
}

func NewCarReadStore(queries CarReadQueries, db sqlc.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CarReadStore) List(ctx context.Context) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCars(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	return mapCarRows(rows)
}

func (r *CarReadStore) ListByBrandPattern(ctx context.Context, pattern string) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCarsByBrandPattern(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars by brand", err)
	}
	return mapCarRows(rows)
}

func (r *CarReadStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCarsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars by ids", err)
	}
	return mapCarRows(rows)
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get car by id", err)
	}
	return toCarView(row)
}

func mapCarRows(rows []sqlc.Cars) ([]*queries.CarView, error) {
	result := make([]*queries.CarView, len(rows))
	for i, row := range rows {
		v, err := toCarView(row)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func toCarView(row sqlc.Cars) (*queries.CarView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode car price", err)
	}

	specs := map[string]any{}
	if len(row.Specs) > 0 {
		if err := json.Unmarshal(row.Specs, &specs); err != nil {
			return nil, infra.WrapRepoErr("failed to decode car specs", err)
		}
	}

	return &queries.CarView{
		ID:       row.ID,
		Brand:    row.Brand,
		Model:    row.Model,
		Year:     int(row.Year),
		Price:    price,
		Specs:    specs,
		Category: row.Category,
	}, nil
}
