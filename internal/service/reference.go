package service

import (
	"context"

	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/store"
)

// resolveReference finds an entity by natural key through lookup and turns
// absence into an unknown-reference validation error on field, e.g.
// "Category Scale was not found".
func resolveReference[T any](
	ctx context.Context,
	lookup func(ctx context.Context, name string) (*store.Ref[T], bool, error),
	field, label, name string,
) (*store.Ref[T], error) {
	ref, found, err := lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NewUnknownReferenceError(field, label, name)
	}
	return ref, nil
}
