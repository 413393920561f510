package reconciler

import (
	"bytes"
	"context"
	"encoding/json"

	"trusted-api/core/apperr"
	"trusted-api/feature/trusted/models"
	"trusted-api/feature/trusted/store"
)

// Func reconciles one submission for event.
type Func func(ctx context.Context, r store.Reader, event *models.Event, body []byte) (*Outcome, error)

// ItemError reports one rejected element of a submission.
type ItemError struct {
	Index   int    `json:"index"`
	Key     string `json:"key,omitempty"`
	Message string `json:"Error"`
	Kind    string `json:"-"`
}

// Outcome is the result of a reconciliation.
type Outcome struct {
	Batch        *store.Batch
	Errors       []ItemError
	Confirmation map[string]any
}

func newOutcome(eventID string) *Outcome {
	return &Outcome{
		Batch:        store.NewBatch(eventID),
		Confirmation: make(map[string]any),
	}
}

// Partial reports whether any item was rejected.
func (o *Outcome) Partial() bool {
	return len(o.Errors) > 0
}

func (o *Outcome) fail(index int, key string, err error) {
	o.Errors = append(o.Errors, ItemError{
		Index:   index,
		Key:     key,
		Message: apperr.Message(err),
		Kind:    apperr.KindOf(err).String(),
	})
}

func (o *Outcome) confirm(field string, value any) {
	o.Confirmation[field] = value
}

// decode unmarshals the whole body or returns a Validation error naming what was expected.
func decode(body []byte, v any, expected string) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return apperr.Validation("request body must be %s", expected)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperr.Validation("request body must be %s: %v", expected, err)
	}
	return nil
}

// sameJSON compares two values by their JSON encoding. Stored JSON columns come
// back with float64 numbers, so structural comparison would report false changes.
func sameJSON(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

// nonNil keeps empty confirmation lists encoded as [] rather than null.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// union appends the values of extra missing from base, preserving order.
func union(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
