package queries

import (
	"context"
	"regexp"

	"elite-drive/internal/pkg/errs"
)

type CarQueries interface {
	List(ctx context.Context) ([]*CarView, error)
	ListByBrand(ctx context.Context, brand string) ([]*CarView, error)
	ListWithAvailability(ctx context.Context) ([]*CarView, error)
}

type carQueriesImpl struct {
	cars  CarReadStore
	slots SlotReadStore
}

func NewCarQueries(cars CarReadStore, slots SlotReadStore) CarQueries {
	return &carQueriesImpl{cars: cars, slots: slots}
}

func (q *carQueriesImpl) List(ctx context.Context) ([]*CarView, error) {
	return q.cars.List(ctx)
}

// ListByBrand matches the whole brand name, ignoring case. The input is
// taken literally: regex metacharacters in brand are escaped.
func (q *carQueriesImpl) ListByBrand(ctx context.Context, brand string) ([]*CarView, error) {
	pattern, err := BrandPattern(brand)
	if err != nil {
		return nil, err
	}
	return q.cars.ListByBrandPattern(ctx, pattern)
}

func (q *carQueriesImpl) ListWithAvailability(ctx context.Context) ([]*CarView, error) {
	ids, err := q.slots.ListAvailableCarIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*CarView{}, nil
	}
	return q.cars.ListByIDs(ctx, ids)
}

// BrandPattern builds the anchored pattern used for case-insensitive brand
// lookups.
func BrandPattern(brand string) (string, error) {
	pattern := "^" + regexp.QuoteMeta(brand) + "$"
	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		return "", errs.Mark(errs.Wrapf(err, "invalid brand %q", brand), errs.ErrInvalidInput)
	}
	return pattern, nil
}
