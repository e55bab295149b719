// Package visitlog implements the visit log service: the façade the host
// platform calls to list, load, save, and delete visit logs. Visit logs are
// persisted in the document store while their parent visits live in
// PostgreSQL; this package owns the translation between the two worlds.
package visitlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	docstore "github.com/openvets/petclinic-visitlog/internal/adapter/mongodb/visitlog"
	"github.com/openvets/petclinic-visitlog/internal/domain"
	"github.com/openvets/petclinic-visitlog/pkg/ctxutil"
)

// docRepo defines the document store operations needed by the service.
type docRepo interface {
	Save(ctx context.Context, doc docstore.Document) (docstore.Document, error)
	GetByID(ctx context.Context, id string) (docstore.Document, error)
	ListByVisitID(ctx context.Context, visitID string) ([]docstore.Document, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

// visitResolver defines the reference resolver interface needed by the service.
type visitResolver interface {
	Visit(ctx context.Context, id uuid.UUID) (*domain.VisitRef, error)
}

// Service implements visit log operations.
type Service struct {
	log  *slog.Logger
	docs docRepo
	refs visitResolver
}

// NewService creates a new visit log service instance.
func NewService(logger *slog.Logger, docs docRepo, refs visitResolver) *Service {
	return &Service{
		log:  logger.With("service", "visitlog"),
		docs: docs,
		refs: refs,
	}
}

// ListByVisit returns the logs attached to the given visit, in the store's
// order. A nil visit or one without an identifier yields an empty result:
// detail views list logs before their parent visit has been saved.
func (s *Service) ListByVisit(ctx context.Context, visit *domain.Visit) ([]*domain.VisitLog, error) {
	if visit == nil || visit.ID == uuid.Nil {
		return nil, nil
	}

	docs, err := s.docs.ListByVisitID(ctx, visit.ID.String())
	if err != nil {
		return nil, err
	}

	logs := make([]*domain.VisitLog, len(docs))
	for i, doc := range docs {
		log, err := s.toVisitLog(ctx, doc)
		if err != nil {
			return nil, err
		}
		logs[i] = log
	}
	return logs, nil
}

// Load returns the visit log with the given id, tagged managed. Fails with
// domain.ErrNotFound when no document has that id.
func (s *Service) Load(ctx context.Context, id string) (*domain.VisitLog, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toVisitLog(ctx, doc)
}

// Save persists the record via insert-or-replace and returns the stored
// state, tagged managed with its id populated. A record without a parent
// visit fails with domain.ErrMissingParent before anything is written.
// Whether the store performed an insert or an update is not observable here.
func (s *Service) Save(ctx context.Context, log *domain.VisitLog) (*domain.VisitLog, error) {
	doc, err := toDocument(log)
	if err != nil {
		return nil, err
	}

	saved, err := s.docs.Save(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "visit log saved",
		slog.String("id", saved.ID),
		slog.String("visit_id", saved.VisitID),
		slog.String("session", ctxutil.SessionIDFromCtx(ctx)),
	)

	return s.toVisitLog(ctx, saved)
}

// Delete removes the given records from the document store. Records without
// an id are skipped; ids absent from the store are tolerated; an empty
// collection is a silent no-op.
func (s *Service) Delete(ctx context.Context, logs []*domain.VisitLog) error {
	ids := make([]string, 0, len(logs))
	for _, log := range logs {
		if log == nil || log.ID == "" {
			continue
		}
		ids = append(ids, log.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.docs.DeleteByIDs(ctx, ids); err != nil {
		return err
	}

	s.log.DebugContext(ctx, "visit logs deleted", slog.Int("count", len(ids)))
	return nil
}
