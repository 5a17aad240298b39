//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"elite-drive/internal/domain/testdrive"
	"elite-drive/internal/infra"
	"elite-drive/internal/infra/repository"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	repositorymock "elite-drive/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTestDriveRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockTestDriveWriteQueries, *testdrive.TestDrive)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking stored with its slot",
			setupMock: func(m *repositorymock.MockTestDriveWriteQueries, td *testdrive.TestDrive) {
				m.EXPECT().CreateTestDrive(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateTestDriveParams) (uuid.UUID, error) {
						assert.Equal(t, td.ID(), arg.ID)
						assert.True(t, arg.SlotID.Valid)
						assert.Equal(t, "confirmed", arg.Status)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: slot already referenced by another booking",
			setupMock: func(m *repositorymock.MockTestDriveWriteQueries, _ *testdrive.TestDrive) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				m.EXPECT().CreateTestDrive(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockTestDriveWriteQueries, _ *testdrive.TestDrive) {
				m.EXPECT().CreateTestDrive(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("connection refused"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockTestDriveWriteQueries(ctrl)
			repo := repository.NewTestDriveRepository(mockQueries, &mockDBTX{})

			td, err := testdrive.NewTestDrive(uuid.New(), uuid.New(), uuid.New(), time.Now())
			require.NoError(t, err)
			tc.setupMock(mockQueries, td)

			id, err := repo.Create(ctx, td)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.ID(), id)
		})
	}
}
