//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/infra"
	"elite-drive/internal/infra/repository"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/tests/common/builder"
	repositorymock "elite-drive/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Claim Tests
// =============================================================================

func TestSlotRepository_Claim(t *testing.T) {
	ctx := context.Background()

	taken := builder.NewSlotBuilder().AsTaken()
	params := sqlc.ClaimSlotParams{ID: taken.ID, CarID: taken.CarID}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSlotWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: open slot is claimed",
			setupMock: func(m *repositorymock.MockSlotWriteQueries) {
				m.EXPECT().ClaimSlot(ctx, gomock.Any(), params).Return(taken.BuildInfra(), nil)
			},
		},
		{
			name: "error: no matching open slot",
			setupMock: func(m *repositorymock.MockSlotWriteQueries) {
				m.EXPECT().ClaimSlot(ctx, gomock.Any(), params).Return(sqlc.ShowroomSchedules{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockSlotWriteQueries) {
				m.EXPECT().ClaimSlot(ctx, gomock.Any(), params).Return(sqlc.ShowroomSchedules{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			repo := repository.NewSlotRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			slot, err := repo.Claim(ctx, taken.ID, taken.CarID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, slot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, taken.ID, slot.ID())
			assert.Equal(t, taken.CarID, slot.CarID())
			assert.False(t, slot.IsAvailable())
		})
	}
}

// =============================================================================
// InsertMany Tests
// =============================================================================

func TestSlotRepository_InsertMany(t *testing.T) {
	ctx := context.Background()

	buildSlots := func(t *testing.T, n int) []*schedule.Slot {
		slots := make([]*schedule.Slot, 0, n)
		for i := 0; i < n; i++ {
			s, err := builder.NewSlotBuilder().BuildDomain()
			require.NoError(t, err)
			slots = append(slots, s)
		}
		return slots
	}

	t.Run("success: counts only rows actually inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		repo := repository.NewSlotRepository(mockQueries, &mockDBTX{})

		gomock.InOrder(
			mockQueries.EXPECT().InsertSlot(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil),
			// existing (car, start) pair
			mockQueries.EXPECT().InsertSlot(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil),
			mockQueries.EXPECT().InsertSlot(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil),
		)

		n, err := repo.InsertMany(ctx, buildSlots(t, 3))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("error: stops at first failure and reports progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		repo := repository.NewSlotRepository(mockQueries, &mockDBTX{})

		gomock.InOrder(
			mockQueries.EXPECT().InsertSlot(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil),
			mockQueries.EXPECT().InsertSlot(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full")),
		)

		n, err := repo.InsertMany(ctx, buildSlots(t, 3))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, 1, n)
	})

	t.Run("success: empty input touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		repo := repository.NewSlotRepository(mockQueries, &mockDBTX{})

		n, err := repo.InsertMany(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
