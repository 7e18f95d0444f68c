package reactive

import "errors"

// ErrBudgetExceeded is returned when a scheduler storm budget limit is
// exceeded: too many commits for a given instance occurred within the
// configured rolling window.
//
// Applications should handle this by logging the event and, if it recurs,
// reducing the frequency of the signal writes that triggered it.
var ErrBudgetExceeded = errors.New("fenestra: storm budget exceeded")

// ErrEffectContext is returned when an effect helper is called outside of
// an effect body or render context. These helpers require access to the
// owner and must be called within CreateEffect or during component render.
var ErrEffectContext = errors.New("fenestra: effect helper called outside effect/render context")
