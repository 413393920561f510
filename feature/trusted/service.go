package trusted

import (
	"context"

	"trusted-api/core/apperr"
	"trusted-api/core/metrics"
	"trusted-api/core/notify"
	"trusted-api/feature/trusted/keys"
	"trusted-api/feature/trusted/reconciler"
	"trusted-api/feature/trusted/store"

	"go.uber.org/zap"
)

// Service runs reconcilers and commits their batches.
type Service struct {
	store    store.Store
	notifier notify.Notifier
	archive  *Archive
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewService creates a new trusted write service.
func NewService(st store.Store, notifier notify.Notifier, archive *Archive, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		notifier: notifier,
		archive:  archive,
		metrics:  m,
		logger:   logger,
	}
}

// Submit reconciles body into event eventID through rt.
// l carries the request scoped fields; nil falls back to the service logger.
func (s *Service) Submit(ctx context.Context, rt Route, eventID, rayID string, body []byte, l *zap.Logger) (*reconciler.Outcome, error) {
	if l == nil {
		l = s.logger
	}

	if !keys.ValidEventKey(eventID) {
		return nil, apperr.Validation("invalid event key %q", eventID)
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	out, err := rt.Reconcile(ctx, s.store, event, body)
	if err != nil {
		return nil, err
	}

	if err := s.store.Commit(ctx, out.Batch); err != nil {
		return nil, err
	}

	for _, m := range out.Batch.Mutations() {
		s.metrics.RecordsMutated(string(m.Kind), m.Op, m.N)
	}

	l.Info("Submission reconciled",
		zap.Int("matches_put", len(out.Batch.PutMatches)),
		zap.Int("matches_deleted", len(out.Batch.DeleteMatches)),
		zap.Int("awards_put", len(out.Batch.PutAwards)),
		zap.Int("awards_deleted", len(out.Batch.DeleteAwards)),
		zap.Int("event_teams_put", len(out.Batch.PutEventTeams)),
		zap.Int("event_teams_deleted", len(out.Batch.DeleteEventTeams)),
		zap.Strings("event_fields", out.Batch.EventFields),
		zap.Int("item_errors", len(out.Errors)))

	if refs := out.Batch.Refs(); len(refs) > 0 && s.notifier != nil {
		if err := s.notifier.Notify(ctx, refs); err != nil {
			l.Warn("Change notification failed", zap.Error(err), zap.Int("refs", len(refs)))
		}
	}

	if name, err := s.archive.Store(ctx, eventID, rt, rayID, body); err != nil {
		l.Warn("Submission archive failed", zap.Error(err))
	} else if name != "" {
		l.Debug("Submission archived", zap.String("object", name))
	}

	return out, nil
}
