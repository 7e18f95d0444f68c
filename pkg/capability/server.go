package capability

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// capabilityView is the JSON shape served by GET /capabilities: enough for
// an integration test (or a devtools inspector) to assert which ids a
// registry currently grants, without exposing the registry's internal
// policy representation.
type capabilityView struct {
	ID      string `json:"id"`
	Granted bool   `json:"granted"`
	Reason  string `json:"reason,omitempty"`
}

// Mount attaches the capability introspection route to r: GET /capabilities
// lists every grant in reg's table. Only an *InMemoryRegistry can be
// introspected this way — a production Registry's policy table is its own
// business, per spec §1's Non-goal on capability policy evaluation; this
// endpoint exists for the reference registry and integration tests only.
func Mount(r chi.Router, reg *InMemoryRegistry) {
	r.Get("/capabilities", func(w http.ResponseWriter, req *http.Request) {
		snapshot := reg.Snapshot()
		views := make([]capabilityView, 0, len(snapshot))
		for _, g := range snapshot {
			v := capabilityView{ID: g.CapabilityID, Granted: !g.Denied}
			if g.Denied {
				v.Reason = g.DenyReason
			}
			views = append(views, v)
		}
		sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(views)
	})
}
