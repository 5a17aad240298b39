package repository

import (
	"context"

	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/infra"
	"elite-drive/internal/infra/repository/converter"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	ClaimSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimSlotParams) (sqlc.ShowroomSchedules, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// Claim flips the slot to unavailable if it is still open and belongs to carID.
// A slot that cannot be claimed for any reason is reported as KindNotFound.
func (r *SlotRepository) Claim(ctx context.Context, slotID, carID uuid.UUID) (*schedule.Slot, error) {
	row, err := r.queries.ClaimSlot(ctx, r.db, sqlc.ClaimSlotParams{ID: slotID, CarID: carID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not claimable", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim slot", err)
	}

	slot, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("claimed slot has invalid window", err)
	}
	return slot, nil
}

// InsertMany stores new slots, skipping any that collide with an existing
// (car, start time). It returns how many rows were actually inserted.
func (r *SlotRepository) InsertMany(ctx context.Context, slots []*schedule.Slot) (int, error) {
	inserted := 0
	for _, s := range slots {
		n, err := r.queries.InsertSlot(ctx, r.db, converter.SlotToInsertParams(s))
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to insert slot", err)
		}
		inserted += int(n)
	}
	return inserted, nil
}
