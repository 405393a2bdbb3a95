// Package batch routes many connectors concurrently.
//
// A [Runner] takes a decoded batch [io.Document], routes every connector on
// a bounded pool of goroutines, and returns the results in input order.
// Connectors that fail validation produce an error entry in the results
// without failing the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/elbow/pkg/elbow"
	errs "github.com/matzehuels/elbow/pkg/errors"
	elbowio "github.com/matzehuels/elbow/pkg/io"
	"github.com/matzehuels/elbow/pkg/observability"
)

// Runner routes batches of connectors.
//
// The Runner holds no per-batch state. Multiple goroutines can safely use
// the same Runner with different documents.
type Runner struct {
	Logger  *log.Logger
	Workers int
}

// DefaultWorkers is the pool size used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// NewRunner creates a runner.
// If logger is nil, log.Default() is used.
// If workers is zero or negative, DefaultWorkers() is used.
func NewRunner(logger *log.Logger, workers int) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Runner{Logger: logger, Workers: workers}
}

// Stats summarizes a batch run.
type Stats struct {
	Connectors int
	Failed     int
	Points     int
	Duration   time.Duration
}

// Result is the outcome of [Runner.Execute].
type Result struct {
	Results elbowio.Results
	Stats   Stats
}

// Execute routes every connector in doc.
//
// Per-connector errors are recorded in the results. Execute itself fails
// only when ctx is cancelled before the batch completes.
func (r *Runner) Execute(ctx context.Context, doc *elbowio.Document) (*Result, error) {
	if doc == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "batch document is nil")
	}

	hooks := observability.Route()
	n := len(doc.Connectors)
	start := time.Now()
	hooks.OnBatchStart(ctx, n)

	routes := make([]elbowio.Result, n)
	var failed, points atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range doc.Connectors {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := doc.Connectors[i]
			res, err := route(gctx, hooks, i, c, doc.Defaults)
			routes[i] = res
			if err != nil {
				failed.Add(1)
				r.Logger.Debug("connector failed", "id", res.ID, "error", err)
				return nil
			}
			points.Add(int64(len(res.Points)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	stats := Stats{
		Connectors: n,
		Failed:     int(failed.Load()),
		Points:     int(points.Load()),
		Duration:   time.Since(start),
	}
	hooks.OnBatchComplete(ctx, n, stats.Failed, stats.Duration)

	r.Logger.Info("routed batch",
		"connectors", stats.Connectors,
		"failed", stats.Failed,
		"workers", r.workers(),
		"duration", stats.Duration)

	return &Result{Results: elbowio.Results{Routes: routes}, Stats: stats}, nil
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return DefaultWorkers()
	}
	return r.Workers
}

// ConnectorID returns c's id, or connector-<index> when it has none.
func ConnectorID(i int, c elbowio.Connector) string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("connector-%d", i)
}

func route(ctx context.Context, hooks observability.RouteHooks, i int, c elbowio.Connector, defaults elbowio.Settings) (elbowio.Result, error) {
	res := elbowio.Result{ID: ConnectorID(i, c)}
	start := time.Now()
	path, err := elbow.Route(c.From, c.To, c.Options(defaults)...)
	hooks.OnRouteComplete(ctx, len(path), time.Since(start), err)
	if err != nil {
		res.Error = elbowio.NewErrorBody(err)
		return res, err
	}
	res.Points = path
	return res, nil
}
