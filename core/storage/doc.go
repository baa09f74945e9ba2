// Package storage wraps the MinIO client used to read and write secret bundles.
//
// The Client interface covers the handful of operations the secrets feature needs and
// is satisfied by both AWS S3 and self-hosted MinIO. A testify mock lives in
// core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
