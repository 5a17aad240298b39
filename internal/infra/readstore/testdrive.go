package readstore

import (
	"context"

	"elite-drive/internal/domain/testdrive"
	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type TestDriveReadQueries interface {
	ListTestDrives(ctx context.Context, db sqlc.DBTX) ([]sqlc.TestDrives, error)
	ListTestDrivesByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.TestDrives, error)
}

type TestDriveReadStore struct {
	queries TestDriveReadQueries
	db      sqlc.DBTX
}

func NewTestDriveReadStore(queries TestDriveReadQueries, db sqlc.DBTX) *TestDriveReadStore {
	return &TestDriveReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TestDriveReadStore) List(ctx context.Context) ([]*queries.TestDriveView, error) {
	rows, err := r.queries.ListTestDrives(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list test drives", err)
	}
	return mapTestDriveRows(rows)
}

func (r *TestDriveReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.TestDriveView, error) {
	rows, err := r.queries.ListTestDrivesByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list test drives by customer", err)
	}
	return mapTestDriveRows(rows)
}

func mapTestDriveRows(rows []sqlc.TestDrives) ([]*queries.TestDriveView, error) {
	result := make([]*queries.TestDriveView, len(rows))
	for i, row := range rows {
		status, err := testdrive.NewStatus(row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode test drive status", err)
		}
		result[i] = &queries.TestDriveView{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			CarID:      row.CarID,
			SlotID:     pgconv.UUIDPtrFromPgtype(row.SlotID),
			Status:     status.String(),
			BookedAt:   pgconv.TimeFromPgtype(row.BookedAt),
		}
	}
	return result, nil
}
