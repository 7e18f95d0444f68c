package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeInstance struct {
	id        uint64
	mode      FlushMode
	mu        sync.Mutex
	commits   int
	committed chan struct{}
}

func (f *fakeInstance) InstanceID() uint64 { return f.id }
func (f *fakeInstance) FlushMode() FlushMode { return f.mode }
func (f *fakeInstance) Commit(ctx context.Context) error {
	f.mu.Lock()
	f.commits++
	f.mu.Unlock()
	if f.committed != nil {
		f.committed <- struct{}{}
	}
	return nil
}

type syncFrameRequester struct{}

func (syncFrameRequester) Request(fn func()) { fn() }

func TestScheduleUpdateChildFlushesSynchronously(t *testing.T) {
	s := New(WithFrameRequester(syncFrameRequester{}))
	inst := &fakeInstance{id: 1, mode: FlushChild}

	s.ScheduleUpdate(context.Background(), inst)

	inst.mu.Lock()
	defer inst.mu.Unlock()
	assert.Equal(t, 1, inst.commits)
}

func TestScheduleUpdateRootCoalescesRepeatedSchedules(t *testing.T) {
	s := New(WithFrameRequester(syncFrameRequester{}))
	inst := &fakeInstance{id: 1, mode: FlushRoot}

	s.mu.Lock()
	s.pending[inst.InstanceID()] = inst
	s.scheduled = true
	s.mu.Unlock()

	s.ScheduleUpdate(context.Background(), inst)

	inst.mu.Lock()
	defer inst.mu.Unlock()
	assert.Equal(t, 0, inst.commits, "second schedule within the same tick should not trigger a new frame request")
}

func TestScheduleUpdateRootFlushesOnFrame(t *testing.T) {
	s := New(WithFrameRequester(syncFrameRequester{}))
	inst := &fakeInstance{id: 1, mode: FlushRoot}

	s.ScheduleUpdate(context.Background(), inst)

	inst.mu.Lock()
	defer inst.mu.Unlock()
	assert.Equal(t, 1, inst.commits)
}

func TestBudgetDropsExcessCommits(t *testing.T) {
	s := New(WithFrameRequester(syncFrameRequester{}), WithBudget(NewBudget(Config{MaxCommitsPerWindow: 1, WindowDuration: 1e9})))
	inst := &fakeInstance{id: 1, mode: FlushChild}

	s.ScheduleUpdate(context.Background(), inst)
	s.ScheduleUpdate(context.Background(), inst)

	inst.mu.Lock()
	defer inst.mu.Unlock()
	assert.Equal(t, 1, inst.commits, "second commit should be dropped by the storm budget")
}
