package credentials

import "context"

// MemoryStore is a fixed in-memory credential map, used when no
// identity database is configured. It stands in for the real identity
// backend behind the same Store interface.
type MemoryStore struct {
	byIdentifier map[string]Credential
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byIdentifier: make(map[string]Credential)}
}

// Add registers a credential under the given identifier, hashing the
// plaintext secret. It is meant for seeding at startup and in tests.
func (m *MemoryStore) Add(identifier, secret string, cred Credential) error {
	hash, err := HashSecret(secret)
	if err != nil {
		return err
	}
	cred.SecretHash = hash
	m.byIdentifier[identifier] = cred
	return nil
}

func (m *MemoryStore) Lookup(_ context.Context, identifier string) (*Credential, error) {
	cred, ok := m.byIdentifier[identifier]
	if !ok {
		return nil, ErrNotFound
	}
	return &cred, nil
}

// SeedDemoUsers loads the stock demo accounts so the service is usable
// out of the box without an identity database.
func SeedDemoUsers(store *MemoryStore) error {
	if err := store.Add("admin@example.com", "admin123", Credential{
		UserID: "uid-admin",
		Role:   RoleAdmin,
	}); err != nil {
		return err
	}
	return store.Add("user@example.com", "user123", Credential{
		UserID: "uid-user",
		Role:   RoleUser,
	})
}
