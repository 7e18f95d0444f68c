package diag

// Template defines a registered diagnostic's fixed fields.
type Template struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps diagnostic codes to their templates: the runtime/hydration/
// protocol/compile codes the core raises, plus the LC1xxx family the
// source transformer uses.
var registry = map[string]Template{
	// Reactive runtime (E0xx)
	"E001": {
		Category: CategoryRuntime,
		Message:  "Signal read outside component context",
		Detail:   "Signals must be read inside a component's Render method, or inside an Effect/Memo.",
		DocURL:   "https://fenestra.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Effect created outside component context",
		Detail:   "Effects must be created inside a component's render function.",
		DocURL:   "https://fenestra.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Memo created outside component context",
		Detail:   "Memos must be created inside a component's render function.",
		DocURL:   "https://fenestra.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Signal set during render",
		Detail:   "Signal values should not be modified during component rendering. Use an Effect or event handler instead.",
		DocURL:   "https://fenestra.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Owner disposed",
		Detail:   "The component owner has been disposed. This usually means you're accessing signals from a component that has unmounted.",
		DocURL:   "https://fenestra.dev/docs/errors/E005",
	},
	"E006": {
		Category: CategoryRuntime,
		Message:  "Circular dependency detected",
		Detail:   "A circular dependency was detected between reactive values. Check your signal and memo dependencies.",
		DocURL:   "https://fenestra.dev/docs/errors/E006",
	},
	"E007": {
		Category: CategoryRuntime,
		Message:  "Resource fetch failed",
		Detail:   "The resource fetcher returned an error.",
		DocURL:   "https://fenestra.dev/docs/errors/E007",
	},
	"E008": {
		Category: CategoryRuntime,
		Message:  "Invalid signal type",
		Detail:   "The signal type does not match the expected type.",
		DocURL:   "https://fenestra.dev/docs/errors/E008",
	},
	"E009": {
		Category: CategoryRuntime,
		Message:  "Handler not found",
		Detail:   "The event handler for this element was not found. The component may have re-rendered with different handlers.",
		DocURL:   "https://fenestra.dev/docs/errors/E009",
	},
	"E011": {
		Category: CategoryRuntime,
		Message:  "Component render panicked",
		Detail:   "A component's Render method panicked. Caught by the nearest error boundary, or propagated if none is registered.",
		DocURL:   "https://fenestra.dev/docs/errors/E011",
	},

	"E050": {
		Category: CategoryRuntime,
		Message:  "Hook configuration is not JSON-serializable",
		Detail:   "A value passed to Hook(name, config) could not be marshaled to JSON. Client hooks receive their configuration as a JSON payload attached to the v-hook attribute.",
		DocURL:   "https://fenestra.dev/docs/errors/E050",
	},

	// Hydration (E04x)
	"E040": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: element type differs",
		Detail:   "The server-rendered element type doesn't match what the client expected. This usually means the component renders differently on the two passes.",
		DocURL:   "https://fenestra.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: text content differs",
		Detail:   "The server-rendered text doesn't match what the client expected.",
		DocURL:   "https://fenestra.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: attribute differs",
		Detail:   "An attribute value differs between server and client rendering.",
		DocURL:   "https://fenestra.dev/docs/errors/E042",
	},
	"E043": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: missing element",
		Detail:   "An element exists on one side that wasn't expected by the other.",
		DocURL:   "https://fenestra.dev/docs/errors/E043",
	},
	"E044": {
		Category: CategoryHydration,
		Message:  "Hydration ID not found",
		Detail:   "The hydration ID referenced by an event doesn't exist in the DOM.",
		DocURL:   "https://fenestra.dev/docs/errors/E044",
	},

	// Devtools bridge protocol (E06x)
	"E060": {
		Category: CategoryProtocol,
		Message:  "Devtools bridge connection failed",
		Detail:   "Unable to establish a WebSocket connection to the devtools inspector.",
		DocURL:   "https://fenestra.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryProtocol,
		Message:  "Invalid devtools message format",
		Detail:   "The received message could not be decoded.",
		DocURL:   "https://fenestra.dev/docs/errors/E061",
	},

	// Capability registry (E07x)
	"E070": {
		Category: CategoryRuntime,
		Message:  "Capability lookup failed",
		Detail:   "The capability registry returned success: false for a Fenestrate call.",
		DocURL:   "https://fenestra.dev/docs/errors/E070",
	},
	"E071": {
		Category: CategoryRuntime,
		Message:  "Capability not granted",
		Detail:   "The calling instance's required-capabilities list does not include the requested capability id.",
		DocURL:   "https://fenestra.dev/docs/errors/E071",
	},

	// Source transformer (LC1xxx)
	"LC1001": {
		Category: CategoryCompile,
		Message:  "Malformed component block",
		Detail:   "A `component Name { ... }` block could not be extracted during dialect preprocessing; check for unbalanced braces or an unterminated block.",
		DocURL:   "https://fenestra.dev/docs/errors/LC1001",
	},
	"LC1002": {
		Category: CategoryCompile,
		Message:  "Unknown decorator or capability annotation",
		Detail:   "A decorator or capability annotation on a component field/method was not recognized by the lowering pass.",
		DocURL:   "https://fenestra.dev/docs/errors/LC1002",
	},
	"LC1003": {
		Category: CategoryCompile,
		Message:  "Generated source failed to parse",
		Detail:   "Phase 2 produced Go source that go/parser rejected; this indicates a bug in a lowering pass rather than in the input dialect file.",
		DocURL:   "https://fenestra.dev/docs/errors/LC1003",
	},
}

// GetAllCodes returns every registered diagnostic code.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate looks up a code's template.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or overrides a diagnostic template, used by tests.
func Register(code string, t Template) {
	registry[code] = t
}
