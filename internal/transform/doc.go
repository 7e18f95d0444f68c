// Package transform implements the two-phase source-to-runtime transformer:
// phase 1 rewrites the component dialect's declarative surface syntax into
// syntactically valid Go via regex extraction (mirroring
// _examples/ForgeLogic-nojs/compiler/compiler.go's preprocessFor), and
// phase 2 runs a series of go/ast passes over the result, each emitting
// internal/diag diagnostics under the LC1xxx code family.
//
// The dialect and its emitted artifact are both Go: "the runtime
// namespace" a transformed file imports is this module's own fenestra
// import path, not a foreign JS runtime.
package transform
