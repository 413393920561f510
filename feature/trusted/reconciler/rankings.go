package reconciler

import (
	"context"
	"fmt"

	"trusted-api/core/utils"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

// Fixed ranking columns around the submitted breakdowns.
var (
	rankingLead  = []any{"Rank", "Team"}
	rankingTrail = []any{"Record (W-L-T)", "DQ", "Played"}
)

type rankingsInput struct {
	Breakdowns []string         `json:"breakdowns"`
	Rankings   []map[string]any `json:"rankings"`
}

// UpdateRankings replaces the rankings table of the event. Rows keep
// submission order and breakdown columns missing from a row are written as 0.
func UpdateRankings(_ context.Context, _ store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var in rankingsInput
	if err := decode(body, &in, "an object with breakdowns and rankings"); err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)

	header := make([]any, 0, len(rankingLead)+len(in.Breakdowns)+len(rankingTrail))
	header = append(header, rankingLead...)
	for _, col := range in.Breakdowns {
		header = append(header, col)
	}
	header = append(header, rankingTrail...)

	table := [][]any{header}
	for i, row := range in.Rankings {
		team, err := keys.TeamKeyFromValue(row["team_key"])
		if err != nil {
			out.fail(i, utils.ToString(row["team_key"]), err)
			continue
		}

		line := make([]any, 0, len(header))
		line = append(line, utils.ToInt(row["rank"]), keys.TeamNumber(team))
		for _, col := range in.Breakdowns {
			v, ok := utils.ToNumber(row[col])
			if !ok {
				v = 0
			}
			line = append(line, v)
		}
		record := fmt.Sprintf("%d-%d-%d", utils.ToInt(row["wins"]), utils.ToInt(row["losses"]), utils.ToInt(row["ties"]))
		line = append(line, record, utils.ToInt(row["dqs"]), utils.ToInt(row["played"]))
		table = append(table, line)
	}

	if !sameJSON(event.Rankings, table) {
		updated := *event
		updated.Rankings = table
		out.Batch.UpdateEvent(&updated, store.EventRankings)
	}

	out.confirm("teams_ranked", len(table)-1)
	return out, nil
}
