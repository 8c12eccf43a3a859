// Package store provides named snapshot persistence for scene trees.
//
// A snapshot freezes a scene as its JSON document together with a name,
// a generated id, and an optional time-to-live. The [Store] interface has
// interchangeable backends:
//   - memory: in-process storage for development and tests
//   - file: JSON files under a directory for CLI usage
//   - redis: Redis-backed storage with native TTL for shared deployments
//   - mongo: MongoDB-backed storage for durable multi-instance deployments
//
// # Usage
//
// Create a store and save a scene:
//
//	st := store.NewMemoryStore()
//	snap, err := store.New("demo", root, store.DefaultTTL)
//	if err != nil {
//	    return err
//	}
//	if err := st.Set(ctx, snap); err != nil {
//	    return err
//	}
//
// Retrieve and rebuild the scene:
//
//	snap, err := st.Get(ctx, id)
//	if err != nil {
//	    return err // store.ErrNotFound when missing or expired
//	}
//	root, err := snap.Scene()
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	figerrors "github.com/matzehuels/figtree/pkg/errors"
	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/scene"
)

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound is returned by Get and Delete when no snapshot with the
	// given id exists. Expired snapshots are reported as not found.
	ErrNotFound = errors.New("snapshot not found")
)

// DefaultTTL is the default snapshot lifetime. A TTL of zero means the
// snapshot never expires.
const DefaultTTL = 0 * time.Second

// Snapshot is a frozen scene: its JSON document plus identity and lifetime.
type Snapshot struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Doc       json.RawMessage `json:"doc" bson:"doc"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time       `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

// IsExpired reports whether the snapshot has outlived its TTL.
// Snapshots without an expiry never expire.
func (s *Snapshot) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// TTL returns the remaining lifetime, or zero when the snapshot never
// expires. Used by backends with native expiration support.
func (s *Snapshot) TTL() time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(s.ExpiresAt)
}

// Scene rebuilds the frozen scene tree from the snapshot's document.
// The returned tree carries fresh identities independent of the original.
func (s *Snapshot) Scene() (scene.Graphic, error) {
	return sceneio.ReadJSON(bytes.NewReader(s.Doc))
}

// New freezes root into a snapshot with a generated uuid id.
// A ttl of zero produces a snapshot that never expires.
func New(name string, root scene.Graphic, ttl time.Duration) (*Snapshot, error) {
	if err := figerrors.ValidateSnapshotName(name); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := sceneio.WriteJSON(root, &buf); err != nil {
		return nil, err
	}

	now := time.Now()
	snap := &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Doc:       buf.Bytes(),
		CreatedAt: now,
	}
	if ttl > 0 {
		snap.ExpiresAt = now.Add(ttl)
	}
	return snap, nil
}

// Store is the interface for snapshot storage backends.
//
// Backends are safe for concurrent use unless noted otherwise; the scene
// trees themselves are not, so callers freeze a scene before handing it to
// a store.
type Store interface {
	// Get retrieves a snapshot by id.
	// Returns ErrNotFound if no snapshot exists or it has expired.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Set stores a snapshot, replacing any existing snapshot with the same id.
	Set(ctx context.Context, snap *Snapshot) error

	// Delete removes a snapshot. Deleting a missing snapshot is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns all live snapshots, newest first.
	List(ctx context.Context) ([]*Snapshot, error)

	// Cleanup removes expired snapshots (may be a no-op for backends with
	// native expiration).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
