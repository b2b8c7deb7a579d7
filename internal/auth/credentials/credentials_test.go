package credentials

import (
	"context"
	"errors"
	"testing"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("user123")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	if hash == "user123" {
		t.Fatal("hash equals the plaintext")
	}

	if err := VerifySecret(hash, "user123"); err != nil {
		t.Errorf("VerifySecret(correct) = %v", err)
	}
	if err := VerifySecret(hash, "wrong"); err == nil {
		t.Error("VerifySecret(wrong) succeeded")
	}
}

func TestMemoryStoreLookup(t *testing.T) {
	store := NewMemoryStore()
	if err := SeedDemoUsers(store); err != nil {
		t.Fatalf("SeedDemoUsers: %v", err)
	}
	ctx := context.Background()

	cred, err := store.Lookup(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if cred.UserID != "uid-admin" || cred.Role != RoleAdmin {
		t.Errorf("credential = %+v, want uid-admin/admin", cred)
	}
	if err := VerifySecret(cred.SecretHash, "admin123"); err != nil {
		t.Errorf("seeded secret does not verify: %v", err)
	}

	if _, err := store.Lookup(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(unknown) = %v, want ErrNotFound", err)
	}
}
