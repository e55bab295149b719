// Command sweep-orphans removes visit logs whose parent visit no longer
// exists in the relational store. The two stores share no transaction, so a
// visit deleted through the host platform leaves its logs behind; this
// sweeper is the offline half of that trade-off. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/openvets/petclinic-visitlog/internal/app"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphaned logs without deleting them")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer func() { _ = a.Close(context.WithoutCancel(ctx)) }()

	swept, err := sweep(ctx, a, *dryRun)
	if err != nil {
		a.Log.Error("sweep failed",
			slog.String("error", err.Error()),
			slog.Int("deleted_before_failure", swept),
		)
		os.Exit(1)
	}

	a.Log.Info("sweep completed",
		slog.Int("orphaned", swept),
		slog.Bool("dry_run", *dryRun),
	)
}

func sweep(ctx context.Context, a *app.App, dryRun bool) (int, error) {
	visitIDs, err := a.Docs.DistinctVisitIDs(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, raw := range visitIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			// An unparseable visitId is corruption, not orphanhood; leave
			// the documents for manual intervention.
			a.Log.Warn("skipping corrupt visitId", slog.String("visit_id", raw))
			continue
		}

		exists, err := a.Visits.Exists(ctx, id)
		if err != nil {
			return swept, err
		}
		if exists {
			continue
		}

		docs, err := a.Docs.ListByVisitID(ctx, raw)
		if err != nil {
			return swept, err
		}
		ids := make([]string, len(docs))
		for i, doc := range docs {
			ids[i] = doc.ID
		}

		if dryRun {
			a.Log.Info("orphaned logs found",
				slog.String("visit_id", raw),
				slog.Int("count", len(ids)),
			)
			swept += len(ids)
			continue
		}

		if err := a.Docs.DeleteByIDs(ctx, ids); err != nil {
			return swept, err
		}
		a.Log.Info("orphaned logs deleted",
			slog.String("visit_id", raw),
			slog.Int("count", len(ids)),
		)
		swept += len(ids)
	}

	return swept, nil
}
