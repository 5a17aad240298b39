//go:build unit

package readstore

import (
	"context"
	"testing"

	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTestDriveReadQueries struct {
	mock.Mock
}

func (m *MockTestDriveReadQueries) ListTestDrives(ctx context.Context, db sqlc.DBTX) ([]sqlc.TestDrives, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.TestDrives), args.Error(1)
}

func (m *MockTestDriveReadQueries) ListTestDrivesByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.TestDrives, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).([]sqlc.TestDrives), args.Error(1)
}

func TestTestDriveReadStore_ListByCustomer(t *testing.T) {
	customerID := uuid.New()
	withSlot := builder.NewTestDriveBuilder().ForCustomer(customerID)
	legacy := builder.NewTestDriveBuilder().ForCustomer(customerID).WithoutSlot()

	mockQueries := new(MockTestDriveReadQueries)
	mockQueries.On("ListTestDrivesByCustomer", mock.Anything, mock.Anything, customerID).
		Return([]sqlc.TestDrives{withSlot.BuildInfra(), legacy.BuildInfra()}, nil)

	drives, err := NewTestDriveReadStore(mockQueries, nil).ListByCustomer(context.Background(), customerID)

	require.NoError(t, err)
	require.Len(t, drives, 2)
	assert.Equal(t, withSlot.BuildView(), drives[0])
	assert.Nil(t, drives[1].SlotID)
	mockQueries.AssertExpectations(t)
}

func TestTestDriveReadStore_List(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		mockQueries := new(MockTestDriveReadQueries)
		mockQueries.On("ListTestDrives", mock.Anything, mock.Anything).Return([]sqlc.TestDrives(nil), nil)

		drives, err := NewTestDriveReadStore(mockQueries, nil).List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, drives)
		assert.Empty(t, drives)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockTestDriveReadQueries)
		mockQueries.On("ListTestDrives", mock.Anything, mock.Anything).Return([]sqlc.TestDrives(nil), assert.AnError)

		drives, err := NewTestDriveReadStore(mockQueries, nil).List(context.Background())

		assert.Nil(t, drives)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unknown stored status", func(t *testing.T) {
		row := builder.NewTestDriveBuilder().With(func(b *builder.TestDriveBuilder) {
			b.Status = "pending"
		}).BuildInfra()
		mockQueries := new(MockTestDriveReadQueries)
		mockQueries.On("ListTestDrives", mock.Anything, mock.Anything).Return([]sqlc.TestDrives{row}, nil)

		drives, err := NewTestDriveReadStore(mockQueries, nil).List(context.Background())

		assert.Nil(t, drives)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
