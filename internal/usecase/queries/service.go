package queries

import (
	"context"
)

type ServiceQueries interface {
	ListDueAlerts(ctx context.Context) ([]*ServiceAlert, error)
}

type serviceQueriesImpl struct {
	records ServiceRecordReadStore
	cars    CarReadStore
}

func NewServiceQueries(records ServiceRecordReadStore, cars CarReadStore) ServiceQueries {
	return &serviceQueriesImpl{records: records, cars: cars}
}

func (q *serviceQueriesImpl) ListDueAlerts(ctx context.Context) ([]*ServiceAlert, error) {
	records, err := q.records.ListDue(ctx)
	if err != nil {
		return nil, err
	}

	cars := newMemo(q.cars.FindByID)
	alerts := make([]*ServiceAlert, 0, len(records))
	for _, r := range records {
		car, err := cars.get(ctx, r.CarID)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, &ServiceAlert{ServiceRecordView: *r, Car: car})
	}
	return alerts, nil
}
