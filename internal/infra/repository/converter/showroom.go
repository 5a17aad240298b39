package converter

import (
	"encoding/json"
	"fmt"

	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
	"elite-drive/internal/domain/maintenance"
	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/domain/testdrive"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
)

func CarToCreateParams(c *car.Car) (sqlc.CreateCarParams, error) {
	specs, err := json.Marshal(c.Specs())
	if err != nil {
		return sqlc.CreateCarParams{}, fmt.Errorf("failed to encode specs: %w", err)
	}
	return sqlc.CreateCarParams{
		ID:       c.ID(),
		Brand:    c.Brand(),
		Model:    c.Model(),
		Year:     int32(c.Year()),
		Price:    pgconv.NumericFromFloat64(c.Price()),
		Specs:    specs,
		Category: c.Category().String(),
	}, nil
}

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	return sqlc.CreateCustomerParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Phone:       c.Phone(),
		LoyaltyTier: string(c.LoyaltyTier()),
	}
}

func SlotToInsertParams(s *schedule.Slot) sqlc.InsertSlotParams {
	return sqlc.InsertSlotParams{
		ID:          s.ID(),
		CarID:       s.CarID(),
		StartTime:   pgconv.TimeToPgtype(s.Window().Start()),
		EndTime:     pgconv.TimeToPgtype(s.Window().End()),
		IsAvailable: s.IsAvailable(),
	}
}

func SlotFromRow(row sqlc.ShowroomSchedules) (*schedule.Slot, error) {
	window, err := schedule.NewTimeWindow(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructSlot(row.ID, row.CarID, window, row.IsAvailable), nil
}

func TestDriveToCreateParams(td *testdrive.TestDrive) sqlc.CreateTestDriveParams {
	slotID := td.SlotID()
	return sqlc.CreateTestDriveParams{
		ID:         td.ID(),
		CustomerID: td.CustomerID(),
		CarID:      td.CarID(),
		SlotID:     pgconv.UUIDPtrToPgtype(&slotID),
		Status:     td.Status().String(),
		BookedAt:   pgconv.TimeToPgtype(td.BookedAt()),
	}
}

func ServiceRecordToCreateParams(r *maintenance.Record) sqlc.CreateServiceRecordParams {
	return sqlc.CreateServiceRecordParams{
		ID:             r.ID(),
		CarID:          r.CarID(),
		Date:           pgconv.TimeToPgtype(r.Date()),
		Description:    r.Description(),
		Cost:           pgconv.NumericFromFloat64(r.Cost()),
		NextServiceDue: r.NextServiceDue(),
	}
}
