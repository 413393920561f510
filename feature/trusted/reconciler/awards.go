package reconciler

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"trusted-api/core/apperr"
	"trusted-api/core/reconcile"
	"trusted-api/core/utils"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

type awardInput struct {
	Name    string `json:"name_str"`
	TeamKey any    `json:"team_key"`
	Awardee string `json:"awardee"`
}

// UpdateAwards makes the stored awards of the event match the submission.
// Entries resolving to the same key become one award; stored awards whose
// key is not submitted are deleted.
func UpdateAwards(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var items []json.RawMessage
	if err := decode(body, &items, "a JSON array of awards"); err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)
	desired := make(map[string]*models.Award)

	for i, raw := range items {
		var in awardInput
		if err := json.Unmarshal(raw, &in); err != nil {
			out.fail(i, "", apperr.Validation("malformed award: %v", err))
			continue
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			out.fail(i, "", apperr.Validation("award name_str is required"))
			continue
		}
		key, awardType := keys.AwardKey(event.ID, name)

		recipient := models.Recipient{Awardee: strings.TrimSpace(in.Awardee)}
		if strings.TrimSpace(utils.ToString(in.TeamKey)) != "" {
			team, err := keys.TeamKeyFromValue(in.TeamKey)
			if err != nil {
				out.fail(i, keys.TrimEvent(event.ID, key), err)
				continue
			}
			recipient.TeamKey = team
		}
		if recipient.TeamKey == "" && recipient.Awardee == "" {
			out.fail(i, keys.TrimEvent(event.ID, key), apperr.Validation("award needs a team_key or an awardee"))
			continue
		}

		award, ok := desired[key]
		if !ok {
			award = &models.Award{ID: key, EventID: event.ID, AwardType: int(awardType), Name: name}
			desired[key] = award
		}
		award.Recipients = append(award.Recipients, recipient)
		if recipient.TeamKey != "" {
			award.TeamKeys = union(award.TeamKeys, []string{recipient.TeamKey})
		}
	}

	// A submission whose every entry was rejected says nothing about the
	// current state, so it must not wipe the stored awards.
	purge := len(desired) > 0 || len(items) == 0

	stored, err := r.ListAwards(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]*models.Award, len(stored))
	for _, a := range stored {
		existing[a.ID] = a
	}

	plan := reconcile.Diff(existing, desired, sameAward, reconcile.Options{Purge: purge})
	if _, err := reconcile.Apply(ctx, plan, out.Batch.AwardMutator()); err != nil {
		return nil, err
	}

	submitted := make([]string, 0, len(desired))
	for key := range desired {
		submitted = append(submitted, keys.TrimEvent(event.ID, key))
	}
	sort.Strings(submitted)

	var deleted []string
	for _, key := range plan.Keys(reconcile.ActionDelete) {
		deleted = append(deleted, keys.TrimEvent(event.ID, key))
	}

	out.confirm("keys_updated", submitted)
	out.confirm("keys_deleted", nonNil(deleted))
	return out, nil
}

func sameAward(a, b *models.Award) bool {
	return a.AwardType == b.AwardType &&
		a.Name == b.Name &&
		sameJSON(a.Recipients, b.Recipients) &&
		sameJSON(a.TeamKeys, b.TeamKeys)
}
