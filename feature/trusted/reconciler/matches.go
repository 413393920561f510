package reconciler

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"trusted-api/core/apperr"
	"trusted-api/core/reconcile"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"

	"gorm.io/datatypes"
)

// TimeLayout is the accepted time_utc format. Values carry no offset and are read as UTC.
const TimeLayout = "2006-01-02T15:04:05"

type allianceInput struct {
	Teams *[]string `json:"teams"`
	Score *int      `json:"score"`
}

// alliancePatch holds the fields one side of a submission actually names.
type alliancePatch struct {
	teams *[]string
	score *int
}

func (p alliancePatch) apply(a models.Alliance) models.Alliance {
	if p.teams != nil {
		a.Teams = *p.teams
	}
	if p.score != nil {
		a.Score = *p.score
	}
	return a
}

type matchInput struct {
	CompLevel      string                    `json:"comp_level"`
	SetNumber      int                       `json:"set_number"`
	MatchNumber    int                       `json:"match_number"`
	Alliances      map[string]*allianceInput `json:"alliances"`
	ScoreBreakdown models.Breakdown          `json:"score_breakdown"`
	TimeString     *string                   `json:"time_string"`
	TimeUTC        *string                   `json:"time_utc"`
	Videos         []string                  `json:"videos"`
}

// pendingMatch is a validated descriptor waiting to be merged.
type pendingMatch struct {
	level     keys.CompLevel
	set       int
	number    int
	alliances map[string]alliancePatch
	breakdown models.Breakdown
	timeLabel *string
	when      *time.Time
	videos    []string
}

// UpdateMatches upserts every valid match descriptor of a JSON array. Matches
// not mentioned are never touched.
func UpdateMatches(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var items []json.RawMessage
	if err := decode(body, &items, "a JSON array of matches"); err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)
	var order []string
	pending := make(map[string]pendingMatch, len(items))

	for i, raw := range items {
		var in matchInput
		if err := json.Unmarshal(raw, &in); err != nil {
			out.fail(i, "", apperr.Validation("malformed match: %v", err))
			continue
		}
		key, p, err := validateMatch(event.ID, in)
		if err != nil {
			out.fail(i, keys.TrimEvent(event.ID, key), err)
			continue
		}
		if _, seen := pending[key]; !seen {
			order = append(order, key)
		}
		pending[key] = p
	}

	existing, err := r.GetMatches(ctx, event.ID, order)
	if err != nil {
		return nil, err
	}

	desired := make(map[string]*models.Match, len(order))
	updated := make([]string, 0, len(order))
	for _, key := range order {
		desired[key] = mergeMatch(event.ID, key, existing[key], pending[key])
		updated = append(updated, keys.TrimEvent(event.ID, key))
	}

	plan := reconcile.Diff(existing, desired, sameMatch, reconcile.Options{})
	if _, err := reconcile.Apply(ctx, plan, out.Batch.MatchMutator()); err != nil {
		return nil, err
	}

	out.confirm("keys_updated", updated)
	return out, nil
}

func validateMatch(eventID string, in matchInput) (string, pendingMatch, error) {
	level, err := keys.ParseCompLevel(in.CompLevel)
	if err != nil {
		return "", pendingMatch{}, err
	}
	set := in.SetNumber
	if level == keys.CompLevelQual && set < 1 {
		set = 1
	}
	short, err := keys.ShortMatchKey(level, set, in.MatchNumber)
	if err != nil {
		return "", pendingMatch{}, err
	}
	key := eventID + "_" + short

	p := pendingMatch{
		level:     level,
		set:       set,
		number:    in.MatchNumber,
		breakdown: in.ScoreBreakdown,
		timeLabel: in.TimeString,
		videos:    in.Videos,
	}

	if in.Alliances != nil {
		alliances, err := normalizeAlliances(in.Alliances)
		if err != nil {
			return key, pendingMatch{}, err
		}
		p.alliances = alliances
	}

	if in.TimeUTC != nil && strings.TrimSpace(*in.TimeUTC) != "" {
		when, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(*in.TimeUTC), time.UTC)
		if err != nil {
			return key, pendingMatch{}, apperr.Validation("invalid time_utc %q, expected YYYY-MM-DDTHH:MM:SS", *in.TimeUTC)
		}
		p.when = &when
	}

	for _, v := range in.Videos {
		if strings.TrimSpace(v) == "" {
			return key, pendingMatch{}, apperr.Validation("empty video reference")
		}
	}

	return key, p, nil
}

// normalizeAlliances validates the named sides. A side or field that is
// absent stays absent so the stored value survives the merge.
func normalizeAlliances(in map[string]*allianceInput) (map[string]alliancePatch, error) {
	out := make(map[string]alliancePatch, len(in))
	for color, a := range in {
		if color != "red" && color != "blue" {
			return nil, apperr.Validation("unknown alliance %q", color)
		}
		if a == nil {
			continue
		}
		patch := alliancePatch{score: a.Score}
		if a.Teams != nil {
			teams := make([]string, 0, len(*a.Teams))
			for _, raw := range *a.Teams {
				team, err := keys.TeamKey(raw)
				if err != nil {
					return nil, err
				}
				teams = append(teams, team)
			}
			patch.teams = &teams
		}
		out[color] = patch
	}
	return out, nil
}

// mergeMatch overlays p onto the stored match. Fields absent from the
// submission keep their stored values and videos only ever grow.
func mergeMatch(eventID, key string, current *models.Match, p pendingMatch) *models.Match {
	m := &models.Match{
		ID:        key,
		EventID:   eventID,
		Alliances: datatypes.NewJSONType(models.Alliances{
			Red:  models.Alliance{Teams: []string{}, Score: -1},
			Blue: models.Alliance{Teams: []string{}, Score: -1},
		}),
	}
	if current != nil {
		clone := *current
		m = &clone
	}

	m.CompLevel = string(p.level)
	m.SetNumber = p.set
	m.MatchNumber = p.number

	if len(p.alliances) > 0 {
		alliances := m.Alliances.Data()
		alliances.Red = p.alliances["red"].apply(alliances.Red)
		alliances.Blue = p.alliances["blue"].apply(alliances.Blue)
		m.Alliances = datatypes.NewJSONType(alliances)
	}
	if p.breakdown != nil {
		m.ScoreBreakdown = datatypes.NewJSONType(p.breakdown)
	}
	if p.timeLabel != nil {
		m.TimeString = *p.timeLabel
	}
	if p.when != nil {
		when := *p.when
		m.Time = &when
	}
	m.Videos = union(m.Videos, p.videos)

	alliances := m.Alliances.Data()
	m.TeamKeys = union(alliances.Red.Teams, alliances.Blue.Teams)
	return m
}

func sameMatch(a, b *models.Match) bool {
	if a.CompLevel != b.CompLevel || a.SetNumber != b.SetNumber || a.MatchNumber != b.MatchNumber {
		return false
	}
	if a.TimeString != b.TimeString {
		return false
	}
	if (a.Time == nil) != (b.Time == nil) || (a.Time != nil && !a.Time.Equal(*b.Time)) {
		return false
	}
	return sameJSON(a.Alliances.Data(), b.Alliances.Data()) &&
		sameJSON(a.ScoreBreakdown.Data(), b.ScoreBreakdown.Data()) &&
		sameJSON(a.Videos, b.Videos) &&
		sameJSON(a.TeamKeys, b.TeamKeys)
}

// DeleteMatches removes the matches named by a JSON array of short keys.
// Keys with no stored match are ignored.
func DeleteMatches(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var shorts []string
	if err := decode(body, &shorts, "a JSON array of match keys"); err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)
	var full []string
	seen := make(map[string]struct{}, len(shorts))
	for i, short := range shorts {
		key, err := keys.FullMatchKey(event.ID, short)
		if err != nil {
			out.fail(i, short, err)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		full = append(full, key)
	}

	existing, err := r.GetMatches(ctx, event.ID, full)
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, key := range full {
		if _, ok := existing[key]; !ok {
			continue
		}
		out.Batch.DeleteMatches = append(out.Batch.DeleteMatches, key)
		deleted = append(deleted, keys.TrimEvent(event.ID, key))
	}

	out.confirm("keys_deleted", nonNil(deleted))
	return out, nil
}

// DeleteAllMatches removes every match of the event. The body must be the
// event key, either bare or as a JSON string.
func DeleteAllMatches(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	confirm := strings.TrimSpace(string(body))
	var quoted string
	if json.Unmarshal(body, &quoted) == nil {
		confirm = quoted
	}
	if confirm != event.ID {
		return nil, apperr.Validation("to delete all matches for this event, the body must be the event key")
	}

	matches, err := r.ListMatches(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	out := newOutcome(event.ID)
	deleted := make([]string, 0, len(matches))
	for _, m := range matches {
		out.Batch.DeleteMatches = append(out.Batch.DeleteMatches, m.ID)
		deleted = append(deleted, keys.TrimEvent(event.ID, m.ID))
	}
	sort.Strings(deleted)

	out.confirm("keys_deleted", deleted)
	return out, nil
}
