//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
	"elite-drive/internal/domain/maintenance"
	"elite-drive/internal/domain/schedule"
	reqdto "elite-drive/internal/handler/dto/request"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/usecase/commands"
	commandsmock "elite-drive/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	showroom := commandsmock.NewMockShowroomRepository(ctrl)
	slots := commandsmock.NewMockSlotRepository(ctrl)
	bookings := commandsmock.NewMockTestDriveCommands(ctrl)

	opts := commands.SeedOptions{ServiceRecords: 5, Bookings: 3, Rand: rand.New(rand.NewPCG(1, 2))}
	uc := commands.NewSeedCommands(showroom, slots, bookings, testPlan, opts, clock.NewMockClock(now))

	var (
		cars      []*car.Car
		customers []uuid.UUID
		generated []*schedule.Slot
	)

	showroom.EXPECT().Reset(ctx).Return(nil)
	showroom.EXPECT().CreateCar(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *car.Car) (uuid.UUID, error) {
			cars = append(cars, c)
			return c.ID(), nil
		}).Times(10)
	showroom.EXPECT().CreateCustomer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) (uuid.UUID, error) {
			customers = append(customers, c.ID())
			return c.ID(), nil
		}).Times(5)
	slots.EXPECT().InsertMany(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s []*schedule.Slot) (int, error) {
			generated = s
			return len(s), nil
		})
	showroom.EXPECT().CreateServiceRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *maintenance.Record) error {
			age := now.Sub(rec.Date())
			assert.GreaterOrEqual(t, age, 30*24*time.Hour)
			assert.LessOrEqual(t, age, 365*24*time.Hour)
			assert.GreaterOrEqual(t, rec.Cost(), 1000.0)
			assert.LessOrEqual(t, rec.Cost(), 5000.0)
			assert.Equal(t, "Routine Maintenance", rec.Description())
			return nil
		}).Times(5)

	var booked []reqdto.BookTestDriveRequest
	bookings.EXPECT().BookTestDrive(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req reqdto.BookTestDriveRequest) (*commands.BookTestDriveResult, error) {
			booked = append(booked, req)
			return &commands.BookTestDriveResult{BookingID: uuid.New()}, nil
		}).Times(3)

	res, err := uc.Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, &commands.SeedResult{Cars: 10, Customers: 5, Slots: 10 * 7 * 3, ServiceRecords: 5, Bookings: 3}, res)
	assert.Equal(t, "Ferrari", cars[0].Brand())
	// The seed keeps today's past hours so the grid is complete.
	assert.Len(t, generated, 10*7*3)
	for i, req := range booked {
		assert.Equal(t, customers[0].String(), req.CustomerID)
		assert.Equal(t, generated[i].ID().String(), req.SlotID)
		assert.Equal(t, generated[i].CarID().String(), req.CarID)
	}
}

func TestSeed_StopsOnResetFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	showroom := commandsmock.NewMockShowroomRepository(ctrl)
	slots := commandsmock.NewMockSlotRepository(ctrl)
	bookings := commandsmock.NewMockTestDriveCommands(ctrl)
	uc := commands.NewSeedCommands(showroom, slots, bookings, testPlan, commands.SeedOptions{}, clock.NewRealClock())

	showroom.EXPECT().Reset(ctx).Return(errors.New("permission denied"))

	res, err := uc.Seed(ctx)
	require.Error(t, err)
	assert.Nil(t, res)
}
