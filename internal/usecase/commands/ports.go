package commands

import (
	"context"

	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
	"elite-drive/internal/domain/maintenance"
	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/domain/testdrive"

	"github.com/google/uuid"
)

// Repositories report failures as infra.RepositoryError kinds.

type SlotRepository interface {
	// Claim atomically flips an open slot of carID to unavailable.
	// KindNotFound means nothing was claimed.
	Claim(ctx context.Context, slotID, carID uuid.UUID) (*schedule.Slot, error)
	InsertMany(ctx context.Context, slots []*schedule.Slot) (int, error)
}

type TestDriveRepository interface {
	Create(ctx context.Context, td *testdrive.TestDrive) (uuid.UUID, error)
}

type ShowroomRepository interface {
	CreateCar(ctx context.Context, c *car.Car) (uuid.UUID, error)
	ListCarIDs(ctx context.Context) ([]uuid.UUID, error)
	CreateCustomer(ctx context.Context, c *customer.Customer) (uuid.UUID, error)
	CreateServiceRecord(ctx context.Context, rec *maintenance.Record) error
	Reset(ctx context.Context) error
}
