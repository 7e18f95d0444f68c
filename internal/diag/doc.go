// Package diag is the sole diagnostic surface for the fenestra core: every
// user-facing error the reactive graph, the reconciler, and the source
// transformer produce is a *Diagnostic carrying a registered code,
// category, optional source Location, and a fix Suggestion.
//
// The core stays otherwise silent — no structured logger, no log lines
// from the reactive graph itself. Runtime telemetry is a separate concern,
// carried over a websocket push channel in pkg/devtools.
package diag
