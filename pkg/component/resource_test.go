package component

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenestra-dev/fenestra/pkg/features/resource"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestUseResourceResolvesAgainstInstance(t *testing.T) {
	inst := New(FuncComponent(func() *vdom.VNode { return textNode("x") }), nil, true)

	r := UseResource(inst, func() (string, error) {
		return "loaded", nil
	})

	waitFor(t, r.IsReady)
	assert.Equal(t, "loaded", r.Data())
}

func TestUseResourceInvalidatesOnDispose(t *testing.T) {
	inst := New(FuncComponent(func() *vdom.VNode { return textNode("x") }), nil, true)
	inst.SetCommitter(func(inst *Instance, tree *vdom.VNode) error { return nil })
	require.NoError(t, inst.Mount())

	r := UseResource(inst, func() (string, error) {
		return "", errors.New("boom")
	})

	inst.Dispose()

	waitFor(t, func() bool { return r.State() != resource.Pending })
	assert.True(t, r.IsError() || r.IsLoading())
}
