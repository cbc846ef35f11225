package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot holds the fully materialized state of both sides for one
// integration, fetched at the same point in time.
type Snapshot struct {
	// Current is the live external-system state keyed by resource key.
	Current map[string]Resource

	// Desired is the declared configuration state keyed by resource key.
	Desired map[string]Resource

	// Built is the timestamp when this snapshot was fetched.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // No caching
	}
	return time.Since(s.Built) > s.TTL
}

// snapshotStore holds cached snapshots keyed by integration name.
type snapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// globalSnapshotStore is the process-wide snapshot cache.
var globalSnapshotStore = &snapshotStore{
	snapshots: make(map[string]*Snapshot),
}

// BuildSnapshot fetches both sides of a source concurrently.
// This function does NOT store the snapshot; use GetOrBuildSnapshot for that.
func BuildSnapshot(ctx context.Context, src Source, ttl time.Duration) (*Snapshot, error) {
	var (
		current    map[string]Resource
		desired    map[string]Resource
		currentErr error
		desiredErr error
		wg         sync.WaitGroup
	)

	// Fetch both sides concurrently
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = src.CurrentState(ctx)
	}()

	go func() {
		defer wg.Done()
		desired, desiredErr = src.DesiredState(ctx)
	}()

	wg.Wait()

	// Check for errors
	if currentErr != nil {
		return nil, currentErr
	}
	if desiredErr != nil {
		return nil, desiredErr
	}

	return &Snapshot{
		Current: current,
		Desired: desired,
		Built:   time.Now(),
		TTL:     ttl,
	}, nil
}

// GetOrBuildSnapshot retrieves a fresh snapshot for the source from the
// store, or builds a new one if missing or expired.
// Uses singleflight to prevent snapshot stampedes.
func GetOrBuildSnapshot(ctx context.Context, src Source, ttl time.Duration) (*Snapshot, error) {
	if ttl == 0 {
		return BuildSnapshot(ctx, src, ttl)
	}

	cacheKey := src.Name()

	// Fast path: check if a fresh snapshot exists
	globalSnapshotStore.mu.RLock()
	snapshot, exists := globalSnapshotStore.snapshots[cacheKey]
	globalSnapshotStore.mu.RUnlock()

	if exists && !snapshot.IsExpired() {
		return snapshot, nil
	}

	// Slow path: build using singleflight to prevent stampedes
	result, err, _ := globalSnapshotStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalSnapshotStore.mu.RLock()
		snapshot, exists := globalSnapshotStore.snapshots[cacheKey]
		globalSnapshotStore.mu.RUnlock()

		if exists && !snapshot.IsExpired() {
			return snapshot, nil
		}

		newSnapshot, err := BuildSnapshot(ctx, src, ttl)
		if err != nil {
			return nil, err
		}

		globalSnapshotStore.mu.Lock()
		globalSnapshotStore.snapshots[cacheKey] = newSnapshot
		globalSnapshotStore.mu.Unlock()

		return newSnapshot, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// InvalidateSnapshot removes the cached snapshot for the source.
// Called after an apply so the next plan sees the converged state.
func InvalidateSnapshot(src Source) {
	globalSnapshotStore.mu.Lock()
	delete(globalSnapshotStore.snapshots, src.Name())
	globalSnapshotStore.mu.Unlock()
}
