package reconciler

import (
	"context"
	"testing"

	"trusted-api/core/database"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"

	"github.com/stretchr/testify/require"
)

const eventID = "2014casj"

func setupStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := store.NewGormStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, db.Create(&models.Event{ID: eventID, Year: 2014, EventShort: "casj"}).Error)
	return s
}

// submit runs fn against the current event and commits the resulting batch.
func submit(t *testing.T, s *store.GormStore, fn Func, body string) *Outcome {
	t.Helper()
	ctx := context.Background()
	event, err := s.GetEvent(ctx, eventID)
	require.NoError(t, err)

	out, err := fn(ctx, s, event, []byte(body))
	require.NoError(t, err)
	require.NoError(t, s.Commit(ctx, out.Batch))
	return out
}

func storedMatches(t *testing.T, s *store.GormStore) map[string]*models.Match {
	t.Helper()
	list, err := s.ListMatches(context.Background(), eventID)
	require.NoError(t, err)
	out := make(map[string]*models.Match, len(list))
	for _, m := range list {
		out[m.ID] = m
	}
	return out
}
