// Package worker runs the navmesh pipeline off the caller's goroutine and
// talks to it through a closed set of tagged request/response messages, so
// a multi-second build never blocks interactive work on the calling side.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/splatwalk/navbake/geometry"
	"github.com/splatwalk/navbake/navgen"
	"github.com/splatwalk/navbake/voxbuild"
)

type state int

const (
	stateUninitialized state = iota
	stateReady
)

// Worker services one request at a time. The caller must not send a
// second Generate before the previous response arrives; there is no
// internal queueing beyond the channel buffer. Cancellation is
// caller-driven through the Run context; an abandoned build is simply
// discarded.
type Worker struct {
	pipeline *navgen.Pipeline
	builder  voxbuild.Builder
	log      *zap.Logger
	metrics  Recorder

	mu    sync.Mutex
	state state

	requests  chan Request
	responses chan Response
}

// Option configures a Worker.
type Option func(*Worker)

func WithLogger(log *zap.Logger) Option {
	return func(w *Worker) { w.log = log }
}

func WithRecorder(r Recorder) Option {
	return func(w *Worker) { w.metrics = r }
}

func New(b voxbuild.Builder, opts ...Option) *Worker {
	w := &Worker{
		builder:   b,
		log:       zap.NewNop(),
		metrics:   NopRecorder{},
		requests:  make(chan Request),
		responses: make(chan Response),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.pipeline = navgen.NewPipeline(b, w.log)
	return w
}

// Requests is the channel the caller posts to. Closing it stops Run.
func (w *Worker) Requests() chan<- Request { return w.requests }

// Responses delivers exactly one response per request, in order.
func (w *Worker) Responses() <-chan Response { return w.responses }

// Run services requests until ctx is cancelled or the request channel is
// closed.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-w.requests:
			if !ok {
				return
			}
			select {
			case w.responses <- w.handle(ctx, req):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Worker) handle(ctx context.Context, req Request) Response {
	switch m := req.(type) {
	case Init:
		if err := w.ensureReady(ctx); err != nil {
			return Error{Message: err.Error()}
		}
		return Ready{}
	case Generate:
		return w.generate(ctx, m)
	default:
		return Error{Message: fmt.Sprintf("unknown request %T", req)}
	}
}

// ensureReady brings the process-wide builder runtime to the Ready state.
// Safe to call from any request; only the first call pays the cost.
func (w *Worker) ensureReady(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateReady {
		return nil
	}
	if err := w.builder.Init(ctx); err != nil {
		return fmt.Errorf("builder init: %w", err)
	}
	w.state = stateReady
	return nil
}

func (w *Worker) generate(ctx context.Context, m Generate) Response {
	id := uuid.NewString()
	log := w.log.With(zap.String("build", id))

	if err := w.ensureReady(ctx); err != nil {
		w.metrics.IncFailure("init")
		log.Error("builder runtime unavailable", zap.Error(err))
		return Error{BuildID: id, Message: err.Error()}
	}

	geom := &geometry.NavGeometry{Positions: m.Positions, Indices: m.Indices}
	start := time.Now()
	res, err := w.pipeline.Generate(ctx, geom, m.Params)
	w.metrics.ObserveBuildDuration(time.Since(start))

	if err != nil {
		stage := failureLabel(err)
		w.metrics.IncFailure(stage)
		log.Warn("build failed", zap.String("failure", stage), zap.Error(err))
		return Error{BuildID: id, Message: err.Error()}
	}

	w.metrics.IncSuccess()
	log.Info("build done",
		zap.Int("navMeshBytes", len(res.NavMeshData)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Done{
		BuildID:        id,
		NavMeshData:    res.NavMeshData,
		DebugPositions: res.DebugPositions,
		DebugIndices:   res.DebugIndices,
		Report:         res.Report,
	}
}

// failureLabel maps pipeline errors onto stable metric labels.
func failureLabel(err error) string {
	var (
		corrupted  *geometry.CorruptedError
		badIndex   *geometry.IndexError
		dense      *navgen.DenseGridError
		degenerate *navgen.DegenerateGridError
		build      *navgen.BuildError
		internal   *navgen.InternalError
	)
	switch {
	case errors.As(err, &corrupted):
		return "geometry-corrupted"
	case errors.As(err, &badIndex):
		return "geometry-corrupted"
	case errors.As(err, &dense):
		return "grid-too-dense"
	case errors.As(err, &degenerate):
		return "degenerate-grid"
	case errors.As(err, &build):
		return string(build.Stage)
	case errors.As(err, &internal):
		return "internal"
	default:
		return "unknown"
	}
}
