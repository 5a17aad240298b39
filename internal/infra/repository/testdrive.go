package repository

import (
	"context"

	"elite-drive/internal/domain/testdrive"
	"elite-drive/internal/infra"
	"elite-drive/internal/infra/repository/converter"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TestDriveWriteQueries interface {
	CreateTestDrive(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTestDriveParams) (uuid.UUID, error)
}

type TestDriveRepository struct {
	queries TestDriveWriteQueries
	db      sqlc.DBTX
}

func NewTestDriveRepository(queries TestDriveWriteQueries, db sqlc.DBTX) *TestDriveRepository {
	return &TestDriveRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TestDriveRepository) Create(ctx context.Context, td *testdrive.TestDrive) (uuid.UUID, error) {
	id, err := r.queries.CreateTestDrive(ctx, r.db, converter.TestDriveToCreateParams(td))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot already has a test drive", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create test drive", err)
	}
	return id, nil
}
