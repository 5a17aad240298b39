package queries

import (
	"context"
)

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
	// History returns the customer's bookings with car and slot attached.
	// Customer details are not filled in.
	History(ctx context.Context, customerID string) ([]*TestDriveDetail, error)
}

type customerQueriesImpl struct {
	customers  CustomerReadStore
	testDrives TestDriveReadStore
	cars       CarReadStore
	slots      SlotReadStore
}

func NewCustomerQueries(customers CustomerReadStore, testDrives TestDriveReadStore, cars CarReadStore, slots SlotReadStore) CustomerQueries {
	return &customerQueriesImpl{
		customers:  customers,
		testDrives: testDrives,
		cars:       cars,
		slots:      slots,
	}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.customers.List(ctx)
}

func (q *customerQueriesImpl) History(ctx context.Context, customerID string) ([]*TestDriveDetail, error) {
	id, err := ParseID(customerID)
	if err != nil {
		return nil, err
	}

	bookings, err := q.testDrives.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	cars := newMemo(q.cars.FindByID)
	slots := newMemo(q.slots.FindByID)

	result := make([]*TestDriveDetail, 0, len(bookings))
	for _, b := range bookings {
		car, err := cars.get(ctx, b.CarID)
		if err != nil {
			return nil, err
		}
		slot, err := slots.getOptional(ctx, b.SlotID)
		if err != nil {
			return nil, err
		}
		result = append(result, &TestDriveDetail{
			TestDriveView: *b,
			Car:           car,
			Slot:          slot,
		})
	}
	return result, nil
}
