package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read stores return infra.RepositoryError values; FindByID reports a missing
// row as infra.KindNotFound.

type CarReadStore interface {
	List(ctx context.Context) ([]*CarView, error)
	ListByBrandPattern(ctx context.Context, pattern string) ([]*CarView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*CarView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CustomerReadStore interface {
	List(ctx context.Context) ([]*CustomerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type SlotReadStore interface {
	ListAvailableByCar(ctx context.Context, carID uuid.UUID) ([]*SlotView, error)
	ListAvailableCarIDs(ctx context.Context) ([]uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type TestDriveReadStore interface {
	List(ctx context.Context) ([]*TestDriveView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*TestDriveView, error)
}

type ServiceRecordReadStore interface {
	ListDue(ctx context.Context) ([]*ServiceRecordView, error)
}
