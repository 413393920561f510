package reconciler

import (
	"context"
	"sort"

	"trusted-api/core/reconcile"
	"trusted-api/core/utils"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

// UpdateEventTeams makes the attending teams of the event exactly the
// submitted list. Teams already stored are left as they are.
func UpdateEventTeams(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var items []any
	if err := decode(body, &items, "a JSON array of team keys"); err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)
	desired := make(map[string]*models.EventTeam, len(items))
	for i, item := range items {
		team, err := keys.TeamKeyFromValue(item)
		if err != nil {
			out.fail(i, utils.ToString(item), err)
			continue
		}
		key := event.ID + "_" + team
		desired[key] = &models.EventTeam{ID: key, EventID: event.ID, TeamKey: team}
	}

	stored, err := r.ListEventTeams(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]*models.EventTeam, len(stored))
	for _, et := range stored {
		existing[et.ID] = et
	}

	purge := len(desired) > 0 || len(items) == 0
	plan := reconcile.Diff(existing, desired, sameEventTeam, reconcile.Options{Purge: purge})
	if _, err := reconcile.Apply(ctx, plan, out.Batch.EventTeamMutator()); err != nil {
		return nil, err
	}

	attending := make([]string, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		if action.Type != reconcile.ActionDelete {
			attending = append(attending, action.Value.TeamKey)
		}
	}
	sort.Strings(attending)
	if !sameJSON([]string(event.TeamKeys), attending) {
		updated := *event
		updated.TeamKeys = attending
		out.Batch.UpdateEvent(&updated, store.EventTeamKeys)
	}

	var added, removed []string
	for _, key := range plan.Keys(reconcile.ActionCreate) {
		added = append(added, keys.TrimEvent(event.ID, key))
	}
	for _, key := range plan.Keys(reconcile.ActionDelete) {
		removed = append(removed, keys.TrimEvent(event.ID, key))
	}
	out.confirm("teams_added", nonNil(added))
	out.confirm("teams_removed", nonNil(removed))
	return out, nil
}

// EventTeam records carry no state beyond their key.
func sameEventTeam(_, _ *models.EventTeam) bool {
	return true
}
