// Package resolver bridges the document store's scalar visit ids back to
// navigable visit handles over the relational store.
package resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openvets/petclinic-visitlog/internal/domain"
)

// visitLoader defines the visit repository interface needed by the resolver.
type visitLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
}

// Resolver produces visit handles. In lazy mode (the default) the handle
// defers the relational load until an attribute beyond the identifier is
// accessed; in eager mode the visit is loaded on each resolution, trading
// translation latency for early failure on dangling references.
type Resolver struct {
	visits visitLoader
	lazy   bool
}

// New creates a resolver over the given visit repository.
func New(visits visitLoader, lazy bool) *Resolver {
	return &Resolver{visits: visits, lazy: lazy}
}

// Visit returns a handle for the visit with the given id.
func (r *Resolver) Visit(ctx context.Context, id uuid.UUID) (*domain.VisitRef, error) {
	if r.lazy {
		return domain.NewVisitRef(id, r.visits.GetByID), nil
	}

	visit, err := r.visits.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve visit: %w", err)
	}
	return domain.ResolvedVisitRef(visit), nil
}
