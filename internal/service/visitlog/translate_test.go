package visitlog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docstore "github.com/openvets/petclinic-visitlog/internal/adapter/mongodb/visitlog"
	"github.com/openvets/petclinic-visitlog/internal/domain"
)

func TestTranslate_RoundTripFromRecord(t *testing.T) {
	t.Parallel()

	visitID := uuid.New()
	svc := newTestService(&docRepoMock{}, lazyResolver())

	tests := []struct {
		name     string
		original *domain.VisitLog
	}{
		{"full record", func() *domain.VisitLog {
			log := newLogFor(visitID, "Vaccination", "Rabies booster, no reaction")
			log.ID = "67a0c2ef8b4de0123456789a"
			return log
		}()},
		{"unsaved without title", newLogFor(visitID, "", "short note")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := toDocument(tt.original)
			require.NoError(t, err)

			back, err := svc.toVisitLog(context.Background(), doc)
			require.NoError(t, err)

			assert.Equal(t, tt.original.ID, back.ID)
			assert.Equal(t, tt.original.Title, back.Title)
			assert.Equal(t, tt.original.Description, back.Description)
			assert.Equal(t, tt.original.Visit.ID(), back.Visit.ID())
		})
	}
}

func TestTranslate_RoundTripFromDocument(t *testing.T) {
	t.Parallel()

	svc := newTestService(&docRepoMock{}, lazyResolver())

	doc := docstore.Document{
		ID:          "67a0c2ef8b4de0123456789a",
		VisitID:     "33333333-3333-3333-3333-333333333333",
		Title:       "Surgery",
		Description: "Cruciate ligament repair",
	}

	log, err := svc.toVisitLog(context.Background(), doc)
	require.NoError(t, err)

	back, err := toDocument(log)
	require.NoError(t, err)

	assert.Equal(t, doc, back)
}

func TestToVisitLog_TagsManagedWithoutLoading(t *testing.T) {
	t.Parallel()

	loads := 0
	refs := &visitResolverMock{
		VisitFunc: func(ctx context.Context, id uuid.UUID) (*domain.VisitRef, error) {
			return domain.NewVisitRef(id, func(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
				loads++
				return &domain.Visit{ID: id}, nil
			}), nil
		},
	}
	svc := newTestService(&docRepoMock{}, refs)

	log, err := svc.toVisitLog(context.Background(), docstore.Document{
		ID:      "abc",
		VisitID: uuid.New().String(),
	})

	require.NoError(t, err)
	assert.False(t, log.IsNew())
	assert.Zero(t, loads, "translation must not touch the relational store")
}

func TestToVisitLog_UnparseableVisitID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&docRepoMock{}, &visitResolverMock{})

	tests := []struct {
		name    string
		visitID string
	}{
		{"empty", ""},
		{"garbage", "not-a-uuid"},
		{"truncated", "11111111-1111"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.toVisitLog(context.Background(), docstore.Document{ID: "x", VisitID: tt.visitID})
			require.ErrorIs(t, err, domain.ErrDataCorruption)
		})
	}
}

func TestToDocument_MissingParent(t *testing.T) {
	t.Parallel()

	log := domain.NewVisitLog()
	log.Title = "t"

	_, err := toDocument(log)
	require.ErrorIs(t, err, domain.ErrMissingParent)
}

func TestToDocument_DoesNotTouchStateTag(t *testing.T) {
	t.Parallel()

	log := newLogFor(uuid.New(), "t", "d")
	require.True(t, log.IsNew())

	_, err := toDocument(log)
	require.NoError(t, err)
	assert.True(t, log.IsNew(), "translation to the persisted shape must not alter the state tag")
}
