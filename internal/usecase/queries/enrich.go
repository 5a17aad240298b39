package queries

import (
	"context"

	"elite-drive/internal/infra"

	"github.com/google/uuid"
)

// memo resolves references by id once per request. A row that no longer
// exists resolves to nil; any other store failure is returned.
type memo[T any] struct {
	find func(ctx context.Context, id uuid.UUID) (*T, error)
	seen map[uuid.UUID]*T
}

func newMemo[T any](find func(ctx context.Context, id uuid.UUID) (*T, error)) *memo[T] {
	return &memo[T]{find: find, seen: make(map[uuid.UUID]*T)}
}

func (m *memo[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	if v, ok := m.seen[id]; ok {
		return v, nil
	}
	v, err := m.find(ctx, id)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		v = nil
	}
	m.seen[id] = v
	return v, nil
}

// getOptional resolves a nullable reference.
func (m *memo[T]) getOptional(ctx context.Context, id *uuid.UUID) (*T, error) {
	if id == nil {
		return nil, nil
	}
	return m.get(ctx, *id)
}
