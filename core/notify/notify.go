package notify

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Kind names a stored entity kind.
type Kind string

const (
	KindEvent     Kind = "event"
	KindMatch     Kind = "match"
	KindAward     Kind = "award"
	KindEventTeam Kind = "event_team"
)

// Ref identifies one changed record.
type Ref struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Notifier receives the refs changed by a committed batch.
type Notifier interface {
	Notify(ctx context.Context, refs []Ref) error
}

// Dedupe returns refs without duplicates, sorted by kind then key.
func Dedupe(refs []Ref) []Ref {
	seen := make(map[Ref]struct{}, len(refs))
	out := make([]Ref, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// LogNotifier writes every notification to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that logs refs at info level.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the refs grouped by kind.
func (n *LogNotifier) Notify(_ context.Context, refs []Ref) error {
	if len(refs) == 0 {
		return nil
	}
	byKind := make(map[Kind][]string)
	for _, ref := range refs {
		byKind[ref.Kind] = append(byKind[ref.Kind], ref.Key)
	}
	fields := make([]zap.Field, 0, len(byKind)+1)
	fields = append(fields, zap.Int("refs", len(refs)))
	for kind, keys := range byKind {
		fields = append(fields, zap.Strings(string(kind), keys))
	}
	n.logger.Info("Records changed", fields...)
	return nil
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	calls [][]Ref
	Err   error
}

// Notify records refs and returns r.Err.
func (r *Recorder) Notify(_ context.Context, refs []Ref) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]Ref(nil), refs...))
	return r.Err
}

// Calls returns a copy of every recorded notification.
func (r *Recorder) Calls() [][]Ref {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]Ref(nil), r.calls...)
}

// Last returns the most recent notification, or nil.
func (r *Recorder) Last() []Ref {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}
