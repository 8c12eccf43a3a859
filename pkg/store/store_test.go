package store

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/figtree/pkg/scene"
)

func demoScene(t *testing.T) *scene.Group {
	t.Helper()
	root := scene.NewGroup()
	if _, err := root.Add(scene.NewDot(10, 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := root.Add(scene.NewCircle(5, 5, 3)); err != nil {
		t.Fatalf("add: %v", err)
	}
	return root
}

func TestSnapshot_RoundTrip(t *testing.T) {
	root := demoScene(t)

	snap, err := New("demo", root, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if snap.ID == "" {
		t.Error("snapshot must get a generated id")
	}
	if snap.IsExpired() {
		t.Error("snapshot without TTL must not expire")
	}
	if snap.TTL() != 0 {
		t.Errorf("TTL() = %v, want 0", snap.TTL())
	}

	got, err := snap.Scene()
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if want := root.Draw(); !slices.Equal(got.Draw(), want) {
		t.Errorf("rebuilt Draw() = %v, want %v", got.Draw(), want)
	}
}

func TestSnapshot_TTL(t *testing.T) {
	snap, err := New("demo", demoScene(t), time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if snap.IsExpired() {
		t.Error("fresh snapshot must not be expired")
	}
	if ttl := snap.TTL(); ttl <= 0 || ttl > time.Hour {
		t.Errorf("TTL() = %v, want within (0, 1h]", ttl)
	}

	snap.ExpiresAt = time.Now().Add(-time.Minute)
	if !snap.IsExpired() {
		t.Error("past expiry must report expired")
	}
}

// storeUnderTest exercises the Store contract shared by all backends.
func storeUnderTest(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	first, err := New("first", demoScene(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Force distinct creation times for ordering.
	first.CreatedAt = time.Now().Add(-time.Minute)
	second, err := New("second", demoScene(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := st.Set(ctx, first); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := st.Set(ctx, second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := st.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "first" {
		t.Errorf("Name = %q, want %q", got.Name, "first")
	}
	if _, err := got.Scene(); err != nil {
		t.Errorf("Scene: %v", err)
	}

	list, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d snapshots, want 2", len(list))
	}
	if list[0].Name != "second" || list[1].Name != "first" {
		t.Errorf("List order = [%s %s], want newest first", list[0].Name, list[1].Name)
	}

	// Expired entries vanish from Get and List.
	expired, err := New("expired", demoScene(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	if err := st.Set(ctx, expired); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := st.Get(ctx, expired.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(expired) = %v, want ErrNotFound", err)
	}
	list, err = st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("List returned %d snapshots after expiry, want 2", len(list))
	}

	if err := st.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if err := st.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	// Deleting again is a no-op.
	if err := st.Delete(ctx, first.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}

	if err := st.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeUnderTest(t, st)
}

func TestFileStore_CleanupRemovesCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	snap, err := New("keep", demoScene(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	if err := st.Set(ctx, snap); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Write garbage alongside the valid snapshot.
	if err := writeFile(dir, "junk.json", "{not json"); err != nil {
		t.Fatalf("write junk: %v", err)
	}

	if err := st.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	list, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Name != "keep" {
		t.Errorf("List after cleanup = %d entries, want the surviving snapshot", len(list))
	}
}

func TestRedisStore_RequiresAddr(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), RedisConfig{}); err == nil {
		t.Error("NewRedisStore without addr should fail")
	}
}

func TestMongoStore_RequiresURI(t *testing.T) {
	if _, err := NewMongoStore(context.Background(), MongoConfig{}); err == nil {
		t.Error("NewMongoStore without URI should fail")
	}
}
