package readstore

import (
	"context"

	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	ListCustomers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Customers, error)
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}

	result := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		result[i] = toCustomerView(row)
	}
	return result, nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer by id", err)
	}
	return toCustomerView(row), nil
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:          row.ID,
		Name:        row.Name,
		Phone:       row.Phone,
		LoyaltyTier: row.LoyaltyTier,
	}
}
