package trusted

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"trusted-api/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive writes verified request bodies to object storage.
// A nil *Archive is valid and stores nothing.
type Archive struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// NewArchive creates an archive writing to bucket. A nil client disables archiving.
func NewArchive(client storage.Client, bucket string) *Archive {
	if client == nil {
		return nil
	}
	return &Archive{client: client, bucket: bucket, now: time.Now}
}

// ObjectName returns <event>/<kind>/<action>/<unix-nanos>-<ray id>.json.
func ObjectName(eventID string, rt Route, at time.Time, rayID string) string {
	if rayID == "" {
		rayID = "none"
	}
	return fmt.Sprintf("%s/%s/%s/%d-%s.json", eventID, rt.Kind, rt.Action, at.UnixNano(), rayID)
}

// Store uploads body unchanged and returns the object name.
func (a *Archive) Store(ctx context.Context, eventID string, rt Route, rayID string, body []byte) (string, error) {
	if a == nil {
		return "", nil
	}
	name := ObjectName(eventID, rt, a.now(), rayID)
	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", name, err)
	}
	return name, nil
}
