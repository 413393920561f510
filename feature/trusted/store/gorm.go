package store

import (
	"context"
	"errors"

	"trusted-api/core/apperr"
	"trusted-api/feature/trusted/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on MySQL, Postgres or SQLite.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the tables of every model.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// GetEvent returns the event or a NotFound error.
func (s *GormStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).Where("id = ?", eventID).Take(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("event %s not found", eventID)
	}
	if err != nil {
		return nil, apperr.Storage("get event", err)
	}
	return &event, nil
}

// GetMatches loads the matches with the given full keys in one query.
// Absent keys are simply missing from the result.
func (s *GormStore) GetMatches(ctx context.Context, eventID string, keys []string) (map[string]*models.Match, error) {
	out := make(map[string]*models.Match, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	var rows []*models.Match
	if err := s.db.WithContext(ctx).Where("event_id = ? AND id IN ?", eventID, keys).Find(&rows).Error; err != nil {
		return nil, apperr.Storage("get matches", err)
	}
	for _, m := range rows {
		out[m.ID] = m
	}
	return out, nil
}

// ListMatches returns every match of the event ordered by key.
func (s *GormStore) ListMatches(ctx context.Context, eventID string) ([]*models.Match, error) {
	var rows []*models.Match
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&rows).Error; err != nil {
		return nil, apperr.Storage("list matches", err)
	}
	return rows, nil
}

// ListAwards returns every award of the event ordered by key.
func (s *GormStore) ListAwards(ctx context.Context, eventID string) ([]*models.Award, error) {
	var rows []*models.Award
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&rows).Error; err != nil {
		return nil, apperr.Storage("list awards", err)
	}
	return rows, nil
}

// ListEventTeams returns every event team of the event ordered by key.
func (s *GormStore) ListEventTeams(ctx context.Context, eventID string) ([]*models.EventTeam, error) {
	var rows []*models.EventTeam
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&rows).Error; err != nil {
		return nil, apperr.Storage("list event teams", err)
	}
	return rows, nil
}

// Commit applies the batch in a single transaction. Deletes run before puts.
func (s *GormStore) Commit(ctx context.Context, b *Batch) error {
	if b == nil || b.Empty() {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.Event != nil && len(b.EventFields) > 0 {
			fields := append(append([]string(nil), b.EventFields...), "UpdatedAt")
			if err := tx.Model(&models.Event{ID: b.EventID}).Select(fields).Updates(b.Event).Error; err != nil {
				return err
			}
		}

		if err := deleteKeys(tx, &models.Match{}, b.EventID, b.DeleteMatches); err != nil {
			return err
		}
		if err := deleteKeys(tx, &models.Award{}, b.EventID, b.DeleteAwards); err != nil {
			return err
		}
		if err := deleteKeys(tx, &models.EventTeam{}, b.EventID, b.DeleteEventTeams); err != nil {
			return err
		}

		if err := upsert(tx, b.PutMatches); err != nil {
			return err
		}
		if err := upsert(tx, b.PutAwards); err != nil {
			return err
		}
		return upsert(tx, b.PutEventTeams)
	})
	if err != nil {
		return apperr.Storage("commit", err)
	}
	return nil
}

func deleteKeys(tx *gorm.DB, model any, eventID string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return tx.Where("event_id = ? AND id IN ?", eventID, keys).Delete(model).Error
}

func upsert[T any](tx *gorm.DB, rows []*T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}
