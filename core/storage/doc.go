// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the submission archive can
// be mocked in tests (see core/storage/mocks). Both AWS S3 and self-hosted MinIO work.
//
// # Operations
//
//   - BucketExists: Verifies access to the archive bucket.
//   - MakeBucket: Creates the bucket if needed (see EnsureBucket).
//   - PutObject: Uploads an archived request body.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
