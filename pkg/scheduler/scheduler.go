// Package scheduler coalesces reactive commits into frames for root
// component instances and flushes child instances synchronously, while
// guarding every instance against runaway re-render storms with a
// rolling-window commit budget.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fenestra-dev/fenestra/pkg/reactive"
)

var tracer = otel.Tracer("github.com/fenestra-dev/fenestra/pkg/scheduler")

// FlushMode controls how a scheduled instance is coalesced.
type FlushMode int

const (
	// FlushRoot coalesces repeated schedules for the same tick onto the
	// next animation frame, as reported by the Scheduler's FrameRequester.
	FlushRoot FlushMode = iota
	// FlushChild flushes synchronously, in line with the rest of its
	// parent's already-in-flight commit.
	FlushChild
)

// Instance is anything the scheduler can commit: a component instance's
// render-and-patch cycle. InstanceID must be stable for the instance's
// lifetime; it is the key used for both dedup and storm-budget tracking.
type Instance interface {
	InstanceID() uint64
	FlushMode() FlushMode
	Commit(ctx context.Context) error
}

// FrameRequester schedules fn to run at the next display refresh. The
// default implementation uses a timer tuned to ~60Hz; a syscall/js build
// can supply one backed by window.requestAnimationFrame.
type FrameRequester interface {
	Request(fn func())
}

// tickerFrameRequester is the non-browser default: each Request call starts
// its own timer and invokes fn once after one interval (about a 60Hz frame).
// It does no coalescing itself; the Scheduler requests at most one frame
// while a flush is pending.
type tickerFrameRequester struct {
	interval time.Duration
}

func (t *tickerFrameRequester) Request(fn func()) {
	timer := time.NewTimer(t.interval)
	go func() {
		<-timer.C
		fn()
	}()
}

// Scheduler owns the pending-root set and the per-instance storm budget.
// Zero value is not usable; construct with New.
type Scheduler struct {
	mu        sync.Mutex
	pending   map[uint64]Instance
	scheduled bool
	frames    FrameRequester
	budget    *Budget
	metrics   *Metrics
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithFrameRequester overrides the default ~60Hz ticker requester, e.g. to
// install a syscall/js requestAnimationFrame-backed one in a wasm build.
func WithFrameRequester(fr FrameRequester) Option {
	return func(s *Scheduler) { s.frames = fr }
}

// WithBudget overrides the default storm budget (60 commits/sec/instance).
func WithBudget(b *Budget) Option {
	return func(s *Scheduler) { s.budget = b }
}

// New constructs a Scheduler with a default ~60Hz frame requester and the
// default storm budget.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		pending: make(map[uint64]Instance),
		frames:  &tickerFrameRequester{interval: time.Second / 60},
		budget:  NewBudget(DefaultConfig()),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScheduleUpdate enqueues inst for its next commit. Root instances
// (FlushRoot) are deduplicated and coalesced onto the next animation
// frame; child instances (FlushChild) commit synchronously and
// immediately, since they ride along with whatever already triggered
// their parent's render pass.
func (s *Scheduler) ScheduleUpdate(ctx context.Context, inst Instance) {
	if inst.FlushMode() == FlushChild {
		s.commit(ctx, inst)
		return
	}

	s.mu.Lock()
	s.pending[inst.InstanceID()] = inst
	needsFlush := !s.scheduled
	if needsFlush {
		s.scheduled = true
	}
	s.mu.Unlock()

	if needsFlush {
		s.frames.Request(func() { s.flushRoots(ctx) })
	}
}

func (s *Scheduler) flushRoots(ctx context.Context) {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[uint64]Instance)
	s.scheduled = false
	s.mu.Unlock()

	for _, inst := range batch {
		s.commit(ctx, inst)
	}
}

func (s *Scheduler) commit(ctx context.Context, inst Instance) {
	id := inst.InstanceID()

	if err := s.budget.CheckEffectRun(id); err != nil {
		s.metrics.commitsDropped.Inc()
		return
	}

	ctx, span := tracer.Start(ctx, "fenestra.commit",
		trace.WithAttributes(attribute.Int64("fenestra.instance_id", int64(id))))
	defer span.End()

	start := time.Now()
	err := inst.Commit(ctx)
	s.metrics.commitDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		return
	}
	s.metrics.commits.Inc()
}

// RunPendingEffects adapts a Scheduler to reactive.CommitBudget, so an
// Owner can ask the scheduler whether a given effect is still allowed to
// run this tick before executing it directly (used for effects that are
// not attached to any component instance, e.g. top-level CreateEffect
// calls outside the component tree).
func (s *Scheduler) RunPendingEffects(owner *reactive.Owner, instanceID uint64) {
	owner.RunPendingEffects(&instanceBudget{s: s, id: instanceID})
}

type instanceBudget struct {
	s  *Scheduler
	id uint64
}

func (b *instanceBudget) CheckEffectRun() error {
	return b.s.budget.CheckEffectRun(b.id)
}
