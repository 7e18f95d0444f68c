// Package capability implements the consumed-not-implemented capability
// registry boundary described in spec §4.F/§6: Fenestrate invokes
// an injected Registry that returns a {success, data, error} result, caches
// successful results per component instance, and reports failures through
// the instance's error-capture path rather than the policy engine itself.
//
// The policy decision — whether a given (user, session, tenant, layer)
// tuple may invoke a capability id — is explicitly out of scope (spec §1
// Non-goals): this package only defines the shape of the request/response
// and a reference in-memory Registry used by tests and the introspection
// server in server.go.
package capability
