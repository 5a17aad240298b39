package readstore

import (
	"context"

	"elite-drive/internal/infra"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"
)

type ServiceRecordReadQueries interface {
	ListServiceDue(ctx context.Context, db sqlc.DBTX) ([]sqlc.ServiceHistory, error)
}

type ServiceRecordReadStore struct {
	queries ServiceRecordReadQueries
	db      sqlc.DBTX
}

func NewServiceRecordReadStore(queries ServiceRecordReadQueries, db sqlc.DBTX) *ServiceRecordReadStore {
	return &ServiceRecordReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRecordReadStore) ListDue(ctx context.Context) ([]*queries.ServiceRecordView, error) {
	rows, err := r.queries.ListServiceDue(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due service records", err)
	}

	result := make([]*queries.ServiceRecordView, len(rows))
	for i, row := range rows {
		cost, err := pgconv.Float64FromNumeric(row.Cost)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode service cost", err)
		}
		result[i] = &queries.ServiceRecordView{
			ID:             row.ID,
			CarID:          row.CarID,
			Date:           pgconv.TimeFromPgtype(row.Date),
			Description:    row.Description,
			Cost:           cost,
			NextServiceDue: row.NextServiceDue,
		}
	}
	return result, nil
}
