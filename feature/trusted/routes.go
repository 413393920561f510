package trusted

import (
	"trusted-api/feature/credentials"
	"trusted-api/feature/trusted/reconciler"
)

// Prefix is the mount point of every trusted route.
const Prefix = "/api/trusted/v1"

// Route binds a (kind, action) pair to its reconciler and required capability.
type Route struct {
	Kind       string
	Action     string
	Capability credentials.Capability
	Reconcile  reconciler.Func
}

// Path returns the fiber path pattern of the route.
func (r Route) Path() string {
	return "/event/:event_key/" + r.Kind + "/" + r.Action
}

// Routes returns the route table.
func Routes() []Route {
	return []Route{
		{"matches", "update", credentials.CapabilityEventData, reconciler.UpdateMatches},
		{"matches", "delete", credentials.CapabilityEventData, reconciler.DeleteMatches},
		{"matches", "delete_all", credentials.CapabilityEventData, reconciler.DeleteAllMatches},
		{"rankings", "update", credentials.CapabilityEventData, reconciler.UpdateRankings},
		{"awards", "update", credentials.CapabilityAwards, reconciler.UpdateAwards},
		{"team_list", "update", credentials.CapabilityEventData, reconciler.UpdateEventTeams},
		{"alliance_selections", "update", credentials.CapabilityAllianceSelection, reconciler.UpdateAllianceSelections},
		{"match_videos", "add", credentials.CapabilityMatchVideo, reconciler.AddMatchVideos},
	}
}
