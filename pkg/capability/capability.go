package capability

import (
	"context"
	"fmt"

	"github.com/fenestra-dev/fenestra/internal/diag"
	"github.com/fenestra-dev/fenestra/pkg/component"
)

// RequestContext carries the ambient values spec §6 requires a capability
// lookup to see: the calling instance, an optional user/session/tenant
// triple, a layer tag (e.g. "server", "edge"), and the capability ids the
// calling component declared via @requires. None of these are interpreted
// by this package; a Registry implementation reads whatever subset its
// policy needs.
type RequestContext struct {
	Instance *component.Instance
	User     any
	Session  any
	Tenant   any
	Layer    string
	Required []string
}

// Result is the {success, data, error} shape spec §4.F/§7 requires a
// Fenestrate call to resolve to.
type Result struct {
	Success bool
	Data    any
	Error   error
}

// Registry is the external, policy-gated service Fenestrate calls into.
// The core never evaluates whether a capability is granted; it only
// consumes this boolean-shaped answer.
type Registry interface {
	Pierce(ctx context.Context, rc RequestContext, capabilityID string, args ...any) Result
}

// AsyncRegistry is the promise-returning counterpart spec §4.F calls "an
// async variant". A Registry may optionally implement it; FenestrateAsync
// falls back to running Pierce on a new goroutine when it doesn't.
type AsyncRegistry interface {
	PierceAsync(ctx context.Context, rc RequestContext, capabilityID string, args ...any) <-chan Result
}

// GrantChecker lets a Registry answer the cheap yes/no question a
// RequiredCapability-gated lifecycle hook (spec §4.D's `on(phase, fn,
// {requiredCapability})`) needs without running a full Pierce call. A
// Registry that doesn't implement it is treated as granting nothing to
// hook gating, even though Fenestrate calls against it may still succeed.
type GrantChecker interface {
	Grants(rc RequestContext, capabilityID string) bool
}

// Fenestrate performs the capability lookup spec §4.D describes:
// cache-then-call. A prior successful result for capabilityID on inst is
// returned without calling reg again; on a fresh call, success caches the
// result and failure reports it via inst.CaptureError under phase
// "fenestrate:<id>" and returns a nil value alongside the error (spec §7:
// "caller sees null").
func Fenestrate(ctx context.Context, reg Registry, inst *component.Instance, rc RequestContext, capabilityID string, args ...any) (any, error) {
	if cached, ok := inst.CacheGet(capabilityID); ok {
		return cached, nil
	}

	rc.Instance = inst
	res := reg.Pierce(ctx, rc, capabilityID, args...)
	return resolve(inst, capabilityID, res)
}

// FenestrateAsync is the promise-shaped counterpart. A cached result is
// delivered immediately; otherwise a goroutine calls reg.PierceAsync when reg
// implements AsyncRegistry, or reg.Pierce when it doesn't. The returned
// channel resolves exactly once, mirroring the cache/error-capture behavior
// of Fenestrate.
func FenestrateAsync(ctx context.Context, reg Registry, inst *component.Instance, rc RequestContext, capabilityID string, args ...any) <-chan struct {
	Data any
	Err  error
} {
	out := make(chan struct {
		Data any
		Err  error
	}, 1)

	if cached, ok := inst.CacheGet(capabilityID); ok {
		out <- struct {
			Data any
			Err  error
		}{Data: cached}
		close(out)
		return out
	}

	rc.Instance = inst
	go func() {
		defer close(out)
		var res Result
		if ar, ok := reg.(AsyncRegistry); ok {
			res = <-ar.PierceAsync(ctx, rc, capabilityID, args...)
		} else {
			res = reg.Pierce(ctx, rc, capabilityID, args...)
		}
		data, err := resolve(inst, capabilityID, res)
		out <- struct {
			Data any
			Err  error
		}{Data: data, Err: err}
	}()
	return out
}

func resolve(inst *component.Instance, capabilityID string, res Result) (any, error) {
	if !res.Success {
		err := res.Error
		if err == nil {
			err = diag.New("E070").WithDetail(fmt.Sprintf("capability %q denied", capabilityID))
		}
		inst.CaptureError("fenestrate:"+capabilityID, err)
		return nil, err
	}
	inst.CacheSet(capabilityID, res.Data)
	return res.Data, nil
}

// CheckerFor adapts reg into the predicate SetCapabilityChecker needs for
// RequiredCapability-gated lifecycle hooks. Registries that don't
// implement GrantChecker grant nothing: a hook gated on a capability the
// registry can't cheaply answer for simply never fires.
func CheckerFor(reg Registry, rc RequestContext) func(capabilityID string) bool {
	gc, ok := reg.(GrantChecker)
	if !ok {
		return func(string) bool { return false }
	}
	return func(capabilityID string) bool { return gc.Grants(rc, capabilityID) }
}

// WireChecker installs CheckerFor(reg, rc) as inst's capability checker, so
// its lifecycle hooks registered with a RequiredCapability gate against
// reg's grant list.
func WireChecker(inst *component.Instance, reg Registry, rc RequestContext) {
	inst.SetCapabilityChecker(CheckerFor(reg, rc))
}
