package reconcile

import (
	"context"
	"fmt"
	"sort"
)

// Diff compares existing and desired values and returns a plan.
// It does NOT execute actions; use Apply for that.
func Diff[T any](existing, desired map[string]T, equal EqualFunc[T], opts Options) *Plan[T] {
	keys := buildUnion(existing, desired)

	plan := &Plan[T]{Actions: make([]Action[T], 0, len(keys))}
	plan.Summary.Total = len(keys)

	for _, key := range keys {
		have, stored := existing[key]
		want, submitted := desired[key]

		switch {
		case submitted && !stored:
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionCreate, Key: key, Value: want})
			plan.Summary.Created++
		case submitted && stored:
			if equal != nil && equal(have, want) {
				plan.Actions = append(plan.Actions, Action[T]{Type: ActionUnchanged, Key: key, Value: have})
				plan.Summary.Unchanged++
				continue
			}
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionUpdate, Key: key, Value: want})
			plan.Summary.Updated++
		case opts.Purge:
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionDelete, Key: key})
			plan.Summary.Deleted++
		default:
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionUnchanged, Key: key, Value: have})
			plan.Summary.Unchanged++
		}
	}

	return plan
}

// Keys returns the keys of every action of the given types, in plan order.
func (p *Plan[T]) Keys(types ...ActionType) []string {
	var keys []string
	for _, action := range p.Actions {
		for _, t := range types {
			if action.Type == t {
				keys = append(keys, action.Key)
				break
			}
		}
	}
	return keys
}

// Apply executes the actions in a plan.
// Returns the number of actions executed and any error encountered.
func Apply[T any](ctx context.Context, plan *Plan[T], mutator Mutator[T]) (executed int, err error) {
	var (
		puts      = make(map[string]T)
		putOrder  []string
		deleteKey []string
	)

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionCreate, ActionUpdate:
			puts[action.Key] = action.Value
			putOrder = append(putOrder, action.Key)
		case ActionDelete:
			deleteKey = append(deleteKey, action.Key)
		}
	}

	if batcher, ok := mutator.(BatchMutator[T]); ok {
		if len(puts) > 0 {
			if err := batcher.PutBatch(ctx, puts); err != nil {
				return executed, fmt.Errorf("failed to batch put: %w", err)
			}
			executed += len(puts)
		}
		if len(deleteKey) > 0 {
			if err := batcher.DeleteBatch(ctx, deleteKey); err != nil {
				return executed, fmt.Errorf("failed to batch delete: %w", err)
			}
			executed += len(deleteKey)
		}
		return executed, nil
	}

	for _, key := range putOrder {
		if err := mutator.Put(ctx, key, puts[key]); err != nil {
			return executed, fmt.Errorf("failed to put key %s: %w", key, err)
		}
		executed++
	}
	for _, key := range deleteKey {
		if err := mutator.Delete(ctx, key); err != nil {
			return executed, fmt.Errorf("failed to delete key %s: %w", key, err)
		}
		executed++
	}

	return executed, nil
}

// buildUnion returns the sorted union of keys from both maps.
func buildUnion[T any](existing, desired map[string]T) []string {
	union := make(map[string]struct{}, len(existing)+len(desired))
	for key := range existing {
		union[key] = struct{}{}
	}
	for key := range desired {
		union[key] = struct{}{}
	}

	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
