package postgres

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
)

type authEmailsRepo struct {
	db dbtx
}

func (r *authEmailsRepo) UpsertAuthEmail(ctx context.Context, a domain.AuthEmail) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_emails (email, key_hash, issued_at) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET key_hash = EXCLUDED.key_hash, issued_at = EXCLUDED.issued_at`,
		a.Email, a.KeyHash, a.IssuedAt.UTC(),
	)
	return err
}

func (r *authEmailsRepo) GetAuthEmail(ctx context.Context, email string) (domain.AuthEmail, error) {
	var a domain.AuthEmail
	err := r.db.QueryRowContext(ctx,
		`SELECT email, key_hash, issued_at FROM auth_emails WHERE email = $1`, email,
	).Scan(&a.Email, &a.KeyHash, &a.IssuedAt)
	return a, mapNotFound(err)
}

func (r *authEmailsRepo) ExistsKeyHash(ctx context.Context, keyHash string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM auth_emails WHERE key_hash = $1)`, keyHash,
	).Scan(&ok)
	return ok, err
}
