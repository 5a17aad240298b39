//go:build unit || e2e

package builder

import (
	"time"

	reqdto "elite-drive/internal/handler/dto/request"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type TestDriveBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	CarID      uuid.UUID
	SlotID     *uuid.UUID
	Status     string
	BookedAt   time.Time
}

func NewTestDriveBuilder() *TestDriveBuilder {
	slotID := uuid.New()
	return &TestDriveBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		CarID:      uuid.New(),
		SlotID:     &slotID,
		Status:     "confirmed",
		BookedAt:   time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *TestDriveBuilder) With(mutate func(*TestDriveBuilder)) *TestDriveBuilder {
	mutate(b)
	return b
}

func (b *TestDriveBuilder) BuildInfra() sqlc.TestDrives {
	return sqlc.TestDrives{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		CarID:      b.CarID,
		SlotID:     pgconv.UUIDPtrToPgtype(b.SlotID),
		Status:     b.Status,
		BookedAt:   pgconv.TimeToPgtype(b.BookedAt),
	}
}

func (b *TestDriveBuilder) BuildView() *queries.TestDriveView {
	return &queries.TestDriveView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		CarID:      b.CarID,
		SlotID:     b.SlotID,
		Status:     b.Status,
		BookedAt:   b.BookedAt,
	}
}

// BuildRequest returns the booking request that would have produced this test drive.
func (b *TestDriveBuilder) BuildRequest() reqdto.BookTestDriveRequest {
	req := reqdto.BookTestDriveRequest{
		CustomerID: b.CustomerID.String(),
		CarID:      b.CarID.String(),
	}
	if b.SlotID != nil {
		req.SlotID = b.SlotID.String()
	}
	return req
}

// Fluent builder methods
func (b *TestDriveBuilder) WithoutSlot() *TestDriveBuilder {
	b.SlotID = nil
	return b
}

func (b *TestDriveBuilder) ForCustomer(customerID uuid.UUID) *TestDriveBuilder {
	b.CustomerID = customerID
	return b
}

func (b *TestDriveBuilder) ForCar(carID uuid.UUID) *TestDriveBuilder {
	b.CarID = carID
	return b
}
