// Package reconcile provides a generic engine for converging stored records to a
// submitted snapshot.
//
// The engine works on keyed maps rather than concrete models, so every reconciler
// (event teams, awards, matches) shares the same planning and apply logic:
//
//  1. Diff builds the union of existing and desired keys and classifies each key as
//     create, update, delete or unchanged.
//  2. Apply routes the planned actions into a Mutator. Mutators that also implement
//     BatchMutator receive one call per action type instead of one call per key.
//
// Delete actions are only planned when Options.Purge is set. Without purge the plan
// is a pure upsert and never removes a key the caller did not mention.
//
// # Usage Example
//
//	plan := reconcile.Diff(existing, desired, sameTeam, reconcile.Options{Purge: true})
//	executed, err := reconcile.Apply(ctx, plan, mutator)
//
// Actions are sorted by key so plans are deterministic across runs.
package reconcile
