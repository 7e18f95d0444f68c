package el

import "github.com/fenestra-dev/fenestra/pkg/features/hooks"

// Hook attaches a client hook to an element.
func Hook(name string, config any) Attr {
	return hooks.Hook(name, config)
}

// OnEvent attaches a hook event handler to an element, filtered to the
// named client hook event. Non-matching events reach the DOM but are
// ignored by the wrapped handler.
func OnEvent(name string, handler func(hooks.HookEvent)) Attr {
	wrapped := func(ev hooks.HookEvent) {
		if ev.Name != name {
			return
		}
		handler(ev)
	}
	return Attr{Key: "onhook", Value: wrapped}
}

