package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Visit is a projection of the relational visit entity. The primary data
// model lives in PostgreSQL and is owned by the host platform; this module
// only reads the columns it needs to display a log's parent.
type Visit struct {
	ID          uuid.UUID
	PetName     string
	Type        string
	VisitStart  time.Time
	Description string
}

// VisitLoadFunc fetches the full visit record for a lazy handle.
type VisitLoadFunc func(ctx context.Context, id uuid.UUID) (*Visit, error)

// VisitRef is a handle to a visit in the relational store. It always carries
// the visit identifier; the attributes are fetched on first Get and memoized,
// so a handle attached during translation never blocks until it is actually
// dereferenced. Both the loaded value and the load error are cached: a
// broken handle stays broken.
type VisitRef struct {
	id   uuid.UUID
	load VisitLoadFunc

	once  sync.Once
	visit *Visit
	err   error
}

// NewVisitRef creates an unresolved handle. load is invoked at most once.
func NewVisitRef(id uuid.UUID, load VisitLoadFunc) *VisitRef {
	return &VisitRef{id: id, load: load}
}

// ResolvedVisitRef creates a handle around an already-loaded visit.
func ResolvedVisitRef(visit *Visit) *VisitRef {
	r := &VisitRef{id: visit.ID, visit: visit}
	r.once.Do(func() {})
	return r
}

// ID returns the visit identifier without touching the relational store.
func (r *VisitRef) ID() uuid.UUID {
	return r.id
}

// Get returns the full visit, loading it on first call.
func (r *VisitRef) Get(ctx context.Context) (*Visit, error) {
	r.once.Do(func() {
		if r.load == nil {
			r.err = fmt.Errorf("visit %s: handle has no loader", r.id)
			return
		}
		r.visit, r.err = r.load(ctx, r.id)
	})
	return r.visit, r.err
}
