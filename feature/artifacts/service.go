package artifacts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"state-reconciler/core/differ"
	"state-reconciler/core/invoker"
	"state-reconciler/core/logger"
	"state-reconciler/core/reconcile"
	"state-reconciler/core/storage"
	"state-reconciler/feature/artifacts/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service audits the storage bucket against the declared artifacts and
// purges undeclared objects.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
	inv    *invoker.Invoker
}

// NewService creates a new artifacts service.
func NewService(client storage.Client, bucket string, db *gorm.DB, l *zap.Logger, opts ...invoker.Option) *Service {
	l = logger.ForIntegration(l, "artifacts")
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		logger: l,
		inv:    invoker.New(invoker.LoggingHooks(l, storagePolicy()), opts...),
	}
}

// storagePolicy retries object-store calls on server-side errors and
// throttling. Client-side errors (missing key, access denied) fail fast.
func storagePolicy() invoker.Policy {
	policy := invoker.DefaultPolicy()
	policy.Attempts = 5
	policy.Classify = invoker.RetryIf(func(err error) bool {
		resp := minio.ToErrorResponse(err)
		return resp.StatusCode >= 500 || resp.Code == "SlowDown"
	})
	return policy
}

// Audit compares the bucket contents against the declared artifacts and
// reports missing uploads, orphaned objects and checksum drift. Read-only.
func (s *Service) Audit(ctx context.Context) (*Report, error) {
	var declared []models.Artifact
	if err := s.db.WithContext(ctx).Find(&declared).Error; err != nil {
		return nil, fmt.Errorf("failed to load declared artifacts: %w", err)
	}

	objects, err := s.listObjects(ctx)
	if err != nil {
		return nil, err
	}

	result := differ.AnyIterables(objects, declared,
		func(obj minio.ObjectInfo) string { return obj.Key },
		func(artifact models.Artifact) string { return artifact.ObjectKey },
		func(obj minio.ObjectInfo, artifact models.Artifact) bool {
			return checksumsMatch(obj.ETag, artifact.Checksum)
		},
	)

	report := &Report{
		Bucket: s.bucket,
		Synced: len(result.Identical),
	}
	for key := range result.Add {
		report.Missing = append(report.Missing, key)
	}
	for key := range result.Delete {
		report.Orphans = append(report.Orphans, key)
	}
	for key, pair := range result.Change {
		report.Drift = append(report.Drift, DriftItem{
			Key:              key,
			DeclaredChecksum: pair.Desired.Checksum,
			ActualChecksum:   strings.Trim(pair.Current.ETag, `"`),
		})
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Orphans)
	sort.Slice(report.Drift, func(i, j int) bool {
		return report.Drift[i].Key < report.Drift[j].Key
	})

	return report, nil
}

// Purge audits the bucket and removes orphaned objects. Requires
// confirmed=true; otherwise the report is returned with a skipped result.
// A failed removal is recorded and the purge continues.
func (s *Service) Purge(ctx context.Context, confirmed bool) (*Report, *reconcile.ApplyResult, error) {
	report, err := s.Audit(ctx)
	if err != nil {
		return nil, nil, err
	}

	if !confirmed {
		return report, &reconcile.ApplyResult{Status: reconcile.StatusSkipped}, nil
	}

	result := &reconcile.ApplyResult{Status: reconcile.StatusSuccess}
	for _, key := range report.Orphans {
		info := invoker.CallInfo{
			Component: "artifacts-storage",
			Operation: "remove-object",
			Target:    key,
		}
		objectKey := key
		err := s.inv.Invoke(ctx, info, func(ctx context.Context) error {
			return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, reconcile.ItemError{
				Key:   objectKey,
				Type:  reconcile.ActionDelete,
				Error: err.Error(),
			})
			continue
		}
		result.Executed++
	}

	if result.Failed > 0 {
		result.Status = reconcile.StatusFailed
	}
	return report, result, nil
}

// listObjects drains the bucket listing into a slice. The minio channel
// reports listing failures as a sentinel entry with Err set.
func (s *Service) listObjects(ctx context.Context) ([]minio.ObjectInfo, error) {
	var objects []minio.ObjectInfo
	ch := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true})
	for obj := range ch {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// checksumsMatch compares a bucket ETag with a declared checksum. ETags of
// plain uploads are quoted MD5 hex; multipart ETags contain a dash and can
// never match an MD5, which correctly surfaces as drift.
func checksumsMatch(etag, checksum string) bool {
	return strings.EqualFold(strings.Trim(etag, `"`), checksum)
}
