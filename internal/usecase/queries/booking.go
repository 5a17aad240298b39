package queries

import (
	"context"
)

type BookingQueries interface {
	ListAll(ctx context.Context) ([]*TestDriveDetail, error)
}

type bookingQueriesImpl struct {
	testDrives TestDriveReadStore
	cars       CarReadStore
	customers  CustomerReadStore
	slots      SlotReadStore
}

func NewBookingQueries(testDrives TestDriveReadStore, cars CarReadStore, customers CustomerReadStore, slots SlotReadStore) BookingQueries {
	return &bookingQueriesImpl{
		testDrives: testDrives,
		cars:       cars,
		customers:  customers,
		slots:      slots,
	}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*TestDriveDetail, error) {
	bookings, err := q.testDrives.List(ctx)
	if err != nil {
		return nil, err
	}

	cars := newMemo(q.cars.FindByID)
	customers := newMemo(q.customers.FindByID)
	slots := newMemo(q.slots.FindByID)

	result := make([]*TestDriveDetail, 0, len(bookings))
	for _, b := range bookings {
		d := &TestDriveDetail{TestDriveView: *b}
		if d.Car, err = cars.get(ctx, b.CarID); err != nil {
			return nil, err
		}
		if d.Customer, err = customers.get(ctx, b.CustomerID); err != nil {
			return nil, err
		}
		if d.Slot, err = slots.getOptional(ctx, b.SlotID); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}
