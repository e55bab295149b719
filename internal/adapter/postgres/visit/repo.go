// Package visit implements read access to the relational visit entity.
// The visits table is owned by the host platform; this repository only
// projects the columns the visit log UI needs.
package visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openvets/petclinic-visitlog/internal/adapter/postgres"
	"github.com/openvets/petclinic-visitlog/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides visit lookups backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new visit repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// visitRow mirrors the projected columns of the visits query.
type visitRow struct {
	ID          uuid.UUID `db:"id"`
	PetName     string    `db:"pet_name"`
	Type        string    `db:"type_"`
	VisitStart  time.Time `db:"visit_start"`
	Description *string   `db:"description"`
}

// GetByID returns the visit with the given id, joined with its pet for the
// display name. Returns domain.ErrNotFound when the visit does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	query := builder.
		Select("v.id", "p.name AS pet_name", "v.type_", "v.visit_start", "v.description").
		From("petclinic_visit v").
		Join("petclinic_pet p ON p.id = v.pet_id").
		Where(sq.Eq{"v.id": id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build visit query: %w", err)
	}

	var row visitRow
	if err := pgxscan.Get(ctx, r.q, &row, sqlStr, args...); err != nil {
		return nil, mapError(err, id)
	}

	visit := &domain.Visit{
		ID:         row.ID,
		PetName:    row.PetName,
		Type:       row.Type,
		VisitStart: row.VisitStart,
	}
	if row.Description != nil {
		visit.Description = *row.Description
	}
	return visit, nil
}

// Exists reports whether a visit with the given id is present.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := builder.
		Select("1").
		From("petclinic_visit").
		Where(sq.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build visit exists query: %w", err)
	}

	var exists bool
	if err := r.q.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, mapError(err, id)
	}
	return exists, nil
}

// mapError converts pgx errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func mapError(err error, id uuid.UUID) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("visit %s: %w", id, err)
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("visit %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("visit %s: %w", id, err)
}
