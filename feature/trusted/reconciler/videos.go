package reconciler

import (
	"context"
	"sort"
	"strings"

	"trusted-api/core/apperr"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

// AddMatchVideos attaches one video to each named match. Videos already
// present are skipped and existing videos are never removed.
func AddMatchVideos(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error) {
	var in map[string]string
	if err := decode(body, &in, "an object of match key to video id"); err != nil {
		return nil, err
	}

	shorts := make([]string, 0, len(in))
	for short := range in {
		shorts = append(shorts, short)
	}
	sort.Strings(shorts)

	out := newOutcome(event.ID)
	wanted := make(map[string]string, len(shorts))
	index := make(map[string]int, len(shorts))
	var order []string
	for i, short := range shorts {
		key, err := keys.FullMatchKey(event.ID, short)
		if err != nil {
			out.fail(i, short, err)
			continue
		}
		video := strings.TrimSpace(in[short])
		if video == "" {
			out.fail(i, short, apperr.Validation("empty video reference"))
			continue
		}
		if _, dup := wanted[key]; !dup {
			order = append(order, key)
			index[key] = i
		}
		wanted[key] = video
	}

	existing, err := r.GetMatches(ctx, event.ID, order)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, key := range order {
		short := keys.TrimEvent(event.ID, key)
		current, ok := existing[key]
		if !ok {
			out.fail(index[key], short, apperr.NotFound("match %s not found", short))
			continue
		}
		videos := union(current.Videos, []string{wanted[key]})
		if len(videos) == len(current.Videos) {
			continue
		}
		m := *current
		m.Videos = videos
		out.Batch.PutMatches = append(out.Batch.PutMatches, &m)
		added = append(added, short)
	}

	out.confirm("keys_updated", nonNil(added))
	return out, nil
}
