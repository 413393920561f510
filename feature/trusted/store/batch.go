package store

import (
	"context"
	"sort"

	"trusted-api/core/notify"
	"trusted-api/core/reconcile"
	"trusted-api/feature/trusted/models"
)

// Event fields a batch may rewrite.
const (
	EventRankings           = "Rankings"
	EventAllianceSelections = "AllianceSelections"
	EventTeamKeys           = "TeamKeys"
)

// Batch is every write planned by one request against one event.
type Batch struct {
	EventID string

	// Event carries new values for EventFields. Nil leaves the event untouched.
	Event       *models.Event
	EventFields []string

	PutMatches    []*models.Match
	DeleteMatches []string

	PutAwards    []*models.Award
	DeleteAwards []string

	PutEventTeams    []*models.EventTeam
	DeleteEventTeams []string
}

// NewBatch creates an empty batch for eventID.
func NewBatch(eventID string) *Batch {
	return &Batch{EventID: eventID}
}

// UpdateEvent schedules fields of event for rewrite.
func (b *Batch) UpdateEvent(event *models.Event, fields ...string) {
	b.Event = event
	for _, f := range fields {
		if !contains(b.EventFields, f) {
			b.EventFields = append(b.EventFields, f)
		}
	}
}

// Empty reports whether the batch would write nothing.
func (b *Batch) Empty() bool {
	return b.Event == nil &&
		len(b.PutMatches) == 0 && len(b.DeleteMatches) == 0 &&
		len(b.PutAwards) == 0 && len(b.DeleteAwards) == 0 &&
		len(b.PutEventTeams) == 0 && len(b.DeleteEventTeams) == 0
}

// Refs lists every record the batch changes.
func (b *Batch) Refs() []notify.Ref {
	var refs []notify.Ref
	if b.Event != nil {
		refs = append(refs, notify.Ref{Kind: notify.KindEvent, Key: b.EventID})
	}
	for _, m := range b.PutMatches {
		refs = append(refs, notify.Ref{Kind: notify.KindMatch, Key: m.ID})
	}
	for _, key := range b.DeleteMatches {
		refs = append(refs, notify.Ref{Kind: notify.KindMatch, Key: key})
	}
	for _, a := range b.PutAwards {
		refs = append(refs, notify.Ref{Kind: notify.KindAward, Key: a.ID})
	}
	for _, key := range b.DeleteAwards {
		refs = append(refs, notify.Ref{Kind: notify.KindAward, Key: key})
	}
	for _, et := range b.PutEventTeams {
		refs = append(refs, notify.Ref{Kind: notify.KindEventTeam, Key: et.ID})
	}
	for _, key := range b.DeleteEventTeams {
		refs = append(refs, notify.Ref{Kind: notify.KindEventTeam, Key: key})
	}
	return notify.Dedupe(refs)
}

// Mutation is a per-kind write count.
type Mutation struct {
	Kind notify.Kind
	Op   string
	N    int
}

// Mutations summarizes the batch for metrics.
func (b *Batch) Mutations() []Mutation {
	out := []Mutation{
		{notify.KindMatch, "put", len(b.PutMatches)},
		{notify.KindMatch, "delete", len(b.DeleteMatches)},
		{notify.KindAward, "put", len(b.PutAwards)},
		{notify.KindAward, "delete", len(b.DeleteAwards)},
		{notify.KindEventTeam, "put", len(b.PutEventTeams)},
		{notify.KindEventTeam, "delete", len(b.DeleteEventTeams)},
	}
	if b.Event != nil {
		out = append(out, Mutation{notify.KindEvent, "put", 1})
	}
	return out
}

// MatchMutator collects match actions of a reconcile plan into the batch.
func (b *Batch) MatchMutator() reconcile.Mutator[*models.Match] {
	return collector[*models.Match]{puts: &b.PutMatches, deletes: &b.DeleteMatches}
}

// AwardMutator collects award actions of a reconcile plan into the batch.
func (b *Batch) AwardMutator() reconcile.Mutator[*models.Award] {
	return collector[*models.Award]{puts: &b.PutAwards, deletes: &b.DeleteAwards}
}

// EventTeamMutator collects event team actions of a reconcile plan into the batch.
func (b *Batch) EventTeamMutator() reconcile.Mutator[*models.EventTeam] {
	return collector[*models.EventTeam]{puts: &b.PutEventTeams, deletes: &b.DeleteEventTeams}
}

// collector appends planned actions instead of executing them; Commit runs them later
// inside one transaction.
type collector[T any] struct {
	puts    *[]T
	deletes *[]string
}

func (c collector[T]) Put(_ context.Context, _ string, value T) error {
	*c.puts = append(*c.puts, value)
	return nil
}

func (c collector[T]) Delete(_ context.Context, key string) error {
	*c.deletes = append(*c.deletes, key)
	return nil
}

func (c collector[T]) PutBatch(ctx context.Context, values map[string]T) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		_ = c.Put(ctx, key, values[key])
	}
	return nil
}

func (c collector[T]) DeleteBatch(_ context.Context, keys []string) error {
	*c.deletes = append(*c.deletes, keys...)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
