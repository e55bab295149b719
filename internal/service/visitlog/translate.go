package visitlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	docstore "github.com/openvets/petclinic-visitlog/internal/adapter/mongodb/visitlog"
	"github.com/openvets/petclinic-visitlog/internal/domain"
)

// toVisitLog converts a stored document into the UI record. The scalar
// visitId becomes a resolver handle, and the result is tagged managed so the
// host save pipeline updates instead of re-inserting it. A visitId that does
// not parse as a UUID marks the record as corrupted.
func (s *Service) toVisitLog(ctx context.Context, doc docstore.Document) (*domain.VisitLog, error) {
	visitID, err := uuid.Parse(doc.VisitID)
	if err != nil {
		return nil, fmt.Errorf("visit log %s: visitId %q: %w", doc.ID, doc.VisitID, domain.ErrDataCorruption)
	}

	ref, err := s.refs.Visit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("visit log %s: %w", doc.ID, err)
	}

	log := domain.NewVisitLog()
	log.ID = doc.ID
	log.Visit = ref
	log.Title = doc.Title
	log.Description = doc.Description
	log.MarkManaged()

	return log, nil
}

// toDocument converts the UI record into its persisted shape: the visit
// handle collapses to its serialized identifier, nothing else changes. The
// id may be empty; the document repository assigns one on save. State tags
// are not touched.
func toDocument(log *domain.VisitLog) (docstore.Document, error) {
	if log.Visit == nil || log.Visit.ID() == uuid.Nil {
		return docstore.Document{}, fmt.Errorf("visit log %q: %w", log.ID, domain.ErrMissingParent)
	}

	return docstore.Document{
		ID:          log.ID,
		VisitID:     log.Visit.ID().String(),
		Title:       log.Title,
		Description: log.Description,
	}, nil
}
