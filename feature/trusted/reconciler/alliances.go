package reconciler

import (
	"context"

	"trusted-api/core/apperr"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

// UpdateAllianceSelections replaces the alliance selections of the event.
// Any invalid team rejects the whole submission since picks are positional.
func UpdateAllianceSelections(_ context.Context, _ store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var in [][]any
	if err := decode(body, &in, "a JSON array of alliances"); err != nil {
		return nil, err
	}

	selections := make([]models.AllianceSelection, 0, len(in))
	for i, alliance := range in {
		picks := make([]string, 0, len(alliance))
		for j, raw := range alliance {
			team, err := keys.TeamKeyFromValue(raw)
			if err != nil {
				return nil, apperr.Validation("alliance %d pick %d: %v", i+1, j+1, err)
			}
			picks = append(picks, team)
		}
		selections = append(selections, models.AllianceSelection{Picks: picks})
	}

	out := newOutcome(event.ID)
	if !sameJSON([]models.AllianceSelection(event.AllianceSelections), selections) {
		updated := *event
		updated.AllianceSelections = selections
		out.Batch.UpdateEvent(&updated, store.EventAllianceSelections)
	}

	out.confirm("alliance_count", len(selections))
	return out, nil
}
