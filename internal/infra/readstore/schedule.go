package readstore

import (
	"context"

	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadQueries interface {
	ListAvailableSlotsByCar(ctx context.Context, db sqlc.DBTX, carID uuid.UUID) ([]sqlc.ShowroomSchedules, error)
	ListAvailableCarIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ShowroomSchedules, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListAvailableByCar(ctx context.Context, carID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListAvailableSlotsByCar(ctx, r.db, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}

	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = ToSlotView(row)
	}
	return result, nil
}

func (r *SlotReadStore) ListAvailableCarIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListAvailableCarIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars with available slots", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by id", err)
	}
	return ToSlotView(row), nil
}

func ToSlotView(row sqlc.ShowroomSchedules) *queries.SlotView {
	return &queries.SlotView{
		ID:          row.ID,
		CarID:       row.CarID,
		StartTime:   pgconv.TimeFromPgtype(row.StartTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		IsAvailable: row.IsAvailable,
	}
}
