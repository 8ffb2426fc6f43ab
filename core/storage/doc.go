// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the catalog and
// export features can be tested against core/storage/mocks. Both AWS S3 and
// self-hosted MinIO work.
//
// # Helpers
//
//   - EnsureBucket: Creates the bucket if needed.
//   - ReadObject / WriteObject: Whole-object reads and writes (catalog JSON, exports).
//   - ObjectExists: Exact-key presence check via a single-key listing.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "catalog/uniques.json")
package storage
