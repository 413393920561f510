package store

import (
	"context"

	"trusted-api/feature/trusted/models"
)

// Reader is the read side used by reconcilers.
type Reader interface {
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetMatches(ctx context.Context, eventID string, keys []string) (map[string]*models.Match, error)
	ListMatches(ctx context.Context, eventID string) ([]*models.Match, error)
	ListAwards(ctx context.Context, eventID string) ([]*models.Award, error)
	ListEventTeams(ctx context.Context, eventID string) ([]*models.EventTeam, error)
}

// Store adds atomic batch commits to Reader.
type Store interface {
	Reader
	Commit(ctx context.Context, batch *Batch) error
}
