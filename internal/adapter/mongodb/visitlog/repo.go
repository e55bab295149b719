// Package visitlog implements the visit log document repository backed by
// MongoDB. The repository knows only the persistence record; translation to
// the UI-facing record happens in the service layer, which keeps this
// package ignorant of the relational store.
package visitlog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openvets/petclinic-visitlog/internal/domain"
)

// Document is the persisted shape of a visit log. It is self-contained: the
// parent visit is stored as a plain serialized UUID in VisitID, so the
// document store needs no knowledge of the relational model.
type Document struct {
	ID          string `bson:"_id,omitempty"`
	VisitID     string `bson:"visitId"`
	Title       string `bson:"title,omitempty"`
	Description string `bson:"description,omitempty"`
}

// Repo provides visit log document persistence backed by MongoDB.
type Repo struct {
	col *mongo.Collection
}

// New creates a new visit log document repository.
func New(col *mongo.Collection) *Repo {
	return &Repo{col: col}
}

// EnsureIndexes creates the secondary index on visitId. ListByVisitID is the
// hot path of the list view and must not collection-scan.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{Keys: bson.D{{Key: "visitId", Value: 1}}}
	if _, err := r.col.Indexes().CreateOne(ctx, model); err != nil {
		return mapError(err, "ensure visitId index")
	}
	return nil
}

// Save inserts or replaces a document. An empty ID is assigned a fresh
// object id before the upsert; the stored document is returned with its ID
// populated either way.
func (r *Repo) Save(ctx context.Context, doc Document) (Document, error) {
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return Document{}, mapError(err, fmt.Sprintf("save visit log %s", doc.ID))
	}
	return doc, nil
}

// GetByID returns the document with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (Document, error) {
	var doc Document
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return Document{}, mapError(err, fmt.Sprintf("get visit log %s", id))
	}
	return doc, nil
}

// ListByVisitID returns all documents whose visitId equals the given value,
// sorted by _id for a stable order.
func (r *Repo) ListByVisitID(ctx context.Context, visitID string) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"visitId": visitID}, opts)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("list visit logs for visit %s", visitID))
	}

	var docs []Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, fmt.Sprintf("decode visit logs for visit %s", visitID))
	}
	return docs, nil
}

// DeleteByIDs removes the documents with the given ids. Unknown ids are
// ignored; an empty set is a no-op without a store round-trip.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return mapError(err, fmt.Sprintf("delete %d visit logs", len(ids)))
	}
	return nil
}

// DistinctVisitIDs returns every distinct visitId value in the collection.
// Used by the orphan sweeper, not by the service façade.
func (r *Repo) DistinctVisitIDs(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "visitId", bson.D{})
	if err != nil {
		return nil, mapError(err, "distinct visit ids")
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("distinct visit ids: non-string visitId %v: %w", v, domain.ErrDataCorruption)
		}
		ids = append(ids, s)
	}
	return ids, nil
}

// mapError converts driver errors to domain errors. Context cancellation and
// deadlines pass through unchanged; mongo.ErrNoDocuments becomes
// domain.ErrNotFound; everything else is wrapped into
// domain.ErrStoreUnavailable so driver vocabulary stays out of upper layers.
func mapError(err error, op string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
