package credentials

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/db"
)

// PostgresStore reads credentials from the identity database. It is
// the production Store; the service falls back to MemoryStore when no
// DSN is configured.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Lookup(ctx context.Context, identifier string) (*Credential, error) {

	var (
		userID     uuid.UUID
		secretHash string
		role       string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, c.password_hash, u.role
		FROM users u
		JOIN credentials c ON c.user_id = u.id
		WHERE LOWER(u.email) = LOWER($1)
	`, identifier).Scan(&userID, &secretHash, &role)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Credential{
		UserID:     userID.String(),
		SecretHash: secretHash,
		Role:       role,
	}, nil
}
