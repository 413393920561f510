package reconcile

import "context"

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate stores a key that does not exist yet.
	ActionCreate ActionType = "create"
	// ActionUpdate overwrites a key whose stored value differs.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a stored key absent from the submission.
	ActionDelete ActionType = "delete"
	// ActionUnchanged marks a key that needs no write.
	ActionUnchanged ActionType = "unchanged"
)

// Action represents a planned mutation for a single key.
type Action[T any] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Value is the desired value. Zero for delete actions.
	Value T `json:"-"`
}

// Plan contains the planned actions and aggregate counts.
type Plan[T any] struct {
	// Actions is sorted by key.
	Actions []Action[T] `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	Total     int `json:"total"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
}

// Changed reports whether the plan needs any write.
func (s Summary) Changed() bool {
	return s.Created+s.Updated+s.Deleted > 0
}

// Options controls planning.
type Options struct {
	// Purge plans deletes for existing keys missing from the desired set.
	Purge bool
}

// EqualFunc reports whether a stored value already matches the desired one.
// A nil EqualFunc treats every key present on both sides as an update.
type EqualFunc[T any] func(existing, desired T) bool

// Mutator receives the actions of a plan one key at a time.
type Mutator[T any] interface {
	Put(ctx context.Context, key string, value T) error
	Delete(ctx context.Context, key string) error
}

// BatchMutator is implemented by mutators that can take whole action groups.
type BatchMutator[T any] interface {
	Mutator[T]
	PutBatch(ctx context.Context, values map[string]T) error
	DeleteBatch(ctx context.Context, keys []string) error
}
