package commands

import (
	"context"
	"log/slog"
	"time"

	"elite-drive/internal/domain/testdrive"
	reqdto "elite-drive/internal/handler/dto/request"
	"elite-drive/internal/infra"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookTestDriveResult struct {
	BookingID uuid.UUID
	SlotID    uuid.UUID
	BookedAt  time.Time
}

type TestDriveCommands interface {
	BookTestDrive(ctx context.Context, req reqdto.BookTestDriveRequest) (*BookTestDriveResult, error)
}

type testDriveCommandsImpl struct {
	slots      SlotRepository
	testDrives TestDriveRepository
	clock      clock.Clock
}

func NewTestDriveCommands(slots SlotRepository, testDrives TestDriveRepository, clk clock.Clock) TestDriveCommands {
	return &testDriveCommandsImpl{
		slots:      slots,
		testDrives: testDrives,
		clock:      clk,
	}
}

// BookTestDrive claims the slot first and only then records the booking, so
// two concurrent requests for one slot can never both succeed. If recording
// fails after a successful claim the slot stays taken.
func (uc *testDriveCommandsImpl) BookTestDrive(ctx context.Context, req reqdto.BookTestDriveRequest) (*BookTestDriveResult, error) {
	customerID, carID, slotID, err := parseBookingIDs(req)
	if err != nil {
		return nil, err
	}

	slot, err := uc.slots.Claim(ctx, slotID, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSlotNotAvailable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	td, err := testdrive.NewTestDrive(customerID, carID, slot.ID(), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	bookingID, err := uc.testDrives.Create(ctx, td)
	if err != nil {
		slog.Warn("slot claimed but test drive not recorded",
			"slot_id", slotID, "customer_id", customerID, "error", err.Error())
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrSlotNotAvailable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &BookTestDriveResult{
		BookingID: bookingID,
		SlotID:    slot.ID(),
		BookedAt:  td.BookedAt(),
	}, nil
}

// parseBookingIDs checks presence of all three identifiers before their format.
func parseBookingIDs(req reqdto.BookTestDriveRequest) (customerID, carID, slotID uuid.UUID, err error) {
	if req.CustomerID == "" || req.CarID == "" || req.SlotID == "" {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.Mark(errs.New("customer_id, car_id and slot_id are required"), errs.ErrMissingField)
	}
	if customerID, err = parseID("customer_id", req.CustomerID); err != nil {
		return
	}
	if carID, err = parseID("car_id", req.CarID); err != nil {
		return
	}
	slotID, err = parseID("slot_id", req.SlotID)
	return
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrapf(err, "malformed %s", field), errs.ErrInvalidIdentifier)
	}
	if id == uuid.Nil {
		return uuid.Nil, errs.Mark(errs.Newf("%s must not be the nil id", field), errs.ErrInvalidIdentifier)
	}
	return id, nil
}
