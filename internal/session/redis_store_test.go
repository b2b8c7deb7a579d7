package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStoreForTest(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return m, NewRedisStore(client)
}

func TestCreateAndGet(t *testing.T) {
	_, store := newStoreForTest(t)
	ctx := context.Background()

	rec := Session{UserID: "uid-user", Role: "user"}
	if err := store.Create(ctx, "sid-1", rec, time.Hour); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a live record")
	}
	if got.UserID != "uid-user" || got.Role != "user" {
		t.Errorf("record = %+v, want %+v", got, rec)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	_, store := newStoreForTest(t)

	got, err := store.Get(context.Background(), "never-created")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

func TestCreateValidation(t *testing.T) {
	_, store := newStoreForTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "", Session{UserID: "u"}, time.Hour); err == nil {
		t.Error("Create with empty id should fail")
	}
	if err := store.Create(ctx, "sid", Session{}, time.Hour); err == nil {
		t.Error("Create with empty user should fail")
	}
	if err := store.Create(ctx, "sid", Session{UserID: "u"}, 0); err == nil {
		t.Error("Create with zero ttl should fail")
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	_, store := newStoreForTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "sid-1", Session{UserID: "u", Role: "user"}, time.Hour); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := store.Delete(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("first Delete should report true")
	}

	deleted, err = store.Delete(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Error("second Delete should report false")
	}
}

func TestTTLExpiresRecord(t *testing.T) {
	m, store := newStoreForTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "sid-1", Session{UserID: "u", Role: "user"}, time.Minute); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("record survived its TTL: %+v", got)
	}
}

func TestGenerateIDUniqueAndOpaque(t *testing.T) {
	a, err := GenerateID()
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	b, err := GenerateID()
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	if a == b {
		t.Error("two generated ids collided")
	}
	// 32 random bytes base64url-encode to 43 characters
	if len(a) != 43 {
		t.Errorf("id length = %d, want 43", len(a))
	}
}
