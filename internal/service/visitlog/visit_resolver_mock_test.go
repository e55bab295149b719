package visitlog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openvets/petclinic-visitlog/internal/domain"
)

var _ visitResolver = &visitResolverMock{}

type visitResolverMock struct {
	VisitFunc func(ctx context.Context, id uuid.UUID) (*domain.VisitRef, error)

	calls struct {
		Visit []struct {
			ID uuid.UUID
		}
	}
	lockVisit sync.RWMutex
}

func (mock *visitResolverMock) Visit(ctx context.Context, id uuid.UUID) (*domain.VisitRef, error) {
	if mock.VisitFunc == nil {
		panic("visitResolverMock.VisitFunc: method is nil but visitResolver.Visit was just called")
	}
	mock.lockVisit.Lock()
	mock.calls.Visit = append(mock.calls.Visit, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lockVisit.Unlock()
	return mock.VisitFunc(ctx, id)
}

func (mock *visitResolverMock) VisitCalls() []struct {
	ID uuid.UUID
} {
	mock.lockVisit.RLock()
	calls := mock.calls.Visit
	mock.lockVisit.RUnlock()
	return calls
}
