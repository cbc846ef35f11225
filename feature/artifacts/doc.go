// Package artifacts reconciles the storage bucket against the artifacts
// declared in the database.
//
// The declared state is the artifacts table (object key + checksum); the
// live state is the bucket listing. The two sides have different shapes, so
// the audit pairs database rows with object infos by key and compares the
// declared checksum against the object ETag.
//
// The audit reports three findings: declared objects missing from the
// bucket (need a re-upload, not performed here), orphaned objects not
// declared anywhere (purged on apply), and checksum drift. Only the purge
// mutates the bucket, and every removal is retried on server-side storage
// errors.
//
// # Endpoints
//
//   - GET  /artifacts/plan:  audit the bucket, never mutates
//   - POST /artifacts/apply: purge orphaned objects (confirm=true required)
package artifacts
