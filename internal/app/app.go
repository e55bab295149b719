// Package app wires configuration, logging, the two stores, and the visit
// log service into a bundle the host platform (or a maintenance command)
// embeds. The module does not own HTTP routes or UI lifecycles; the host
// calls the service operations directly.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openvets/petclinic-visitlog/internal/adapter/mongodb"
	mongovisitlog "github.com/openvets/petclinic-visitlog/internal/adapter/mongodb/visitlog"
	"github.com/openvets/petclinic-visitlog/internal/adapter/postgres"
	"github.com/openvets/petclinic-visitlog/internal/adapter/postgres/visit"
	"github.com/openvets/petclinic-visitlog/internal/config"
	"github.com/openvets/petclinic-visitlog/internal/resolver"
	"github.com/openvets/petclinic-visitlog/internal/service/visitlog"
)

// App bundles the wired dependencies.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Pool  *pgxpool.Pool
	Mongo *mongo.Client

	Visits    *visit.Repo
	VisitLogs *visitlog.Service
	Docs      *mongovisitlog.Repo
}

// New loads configuration, initializes the logger, connects both stores
// (failing fast if either is unreachable), ensures the visitId index, and
// wires the visit log service. Call Close when done.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting visit log module",
		slog.String("version", BuildVersion()),
		slog.String("collection", cfg.DocumentStore.Collection),
		slog.Bool("lazy_visit_resolution", cfg.VisitLog.LazyVisitResolution),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("relational store: %w", err)
	}

	client, err := mongodb.Connect(ctx, cfg.DocumentStore)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("document store: %w", err)
	}

	docs := mongovisitlog.New(mongodb.Collection(client, cfg.DocumentStore))
	if err := docs.EnsureIndexes(ctx); err != nil {
		pool.Close()
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	visits := visit.New(pool)
	refs := resolver.New(visits, cfg.VisitLog.LazyVisitResolution)

	return &App{
		Config:    cfg,
		Log:       logger,
		Pool:      pool,
		Mongo:     client,
		Visits:    visits,
		VisitLogs: visitlog.NewService(logger, docs, refs),
		Docs:      docs,
	}, nil
}

// Close releases both store connections.
func (a *App) Close(ctx context.Context) error {
	a.Pool.Close()
	if err := a.Mongo.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect document store: %w", err)
	}
	return nil
}
