package visitlog

import (
	"context"
	"sync"

	docstore "github.com/openvets/petclinic-visitlog/internal/adapter/mongodb/visitlog"
)

var _ docRepo = &docRepoMock{}

type docRepoMock struct {
	SaveFunc          func(ctx context.Context, doc docstore.Document) (docstore.Document, error)
	GetByIDFunc       func(ctx context.Context, id string) (docstore.Document, error)
	ListByVisitIDFunc func(ctx context.Context, visitID string) ([]docstore.Document, error)
	DeleteByIDsFunc   func(ctx context.Context, ids []string) error

	calls struct {
		Save []struct {
			Doc docstore.Document
		}
		GetByID []struct {
			ID string
		}
		ListByVisitID []struct {
			VisitID string
		}
		DeleteByIDs []struct {
			IDs []string
		}
	}
	lockSave          sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByVisitID sync.RWMutex
	lockDeleteByIDs   sync.RWMutex
}

func (mock *docRepoMock) Save(ctx context.Context, doc docstore.Document) (docstore.Document, error) {
	if mock.SaveFunc == nil {
		panic("docRepoMock.SaveFunc: method is nil but docRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Doc docstore.Document
	}{Doc: doc})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, doc)
}

func (mock *docRepoMock) SaveCalls() []struct {
	Doc docstore.Document
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *docRepoMock) GetByID(ctx context.Context, id string) (docstore.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("docRepoMock.GetByIDFunc: method is nil but docRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID string
	}{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *docRepoMock) GetByIDCalls() []struct {
	ID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *docRepoMock) ListByVisitID(ctx context.Context, visitID string) ([]docstore.Document, error) {
	if mock.ListByVisitIDFunc == nil {
		panic("docRepoMock.ListByVisitIDFunc: method is nil but docRepo.ListByVisitID was just called")
	}
	mock.lockListByVisitID.Lock()
	mock.calls.ListByVisitID = append(mock.calls.ListByVisitID, struct {
		VisitID string
	}{VisitID: visitID})
	mock.lockListByVisitID.Unlock()
	return mock.ListByVisitIDFunc(ctx, visitID)
}

func (mock *docRepoMock) ListByVisitIDCalls() []struct {
	VisitID string
} {
	mock.lockListByVisitID.RLock()
	calls := mock.calls.ListByVisitID
	mock.lockListByVisitID.RUnlock()
	return calls
}

func (mock *docRepoMock) DeleteByIDs(ctx context.Context, ids []string) error {
	if mock.DeleteByIDsFunc == nil {
		panic("docRepoMock.DeleteByIDsFunc: method is nil but docRepo.DeleteByIDs was just called")
	}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, struct {
		IDs []string
	}{IDs: ids})
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, ids)
}

func (mock *docRepoMock) DeleteByIDsCalls() []struct {
	IDs []string
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
