package sqlite

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

type authEmailsRepo struct {
	q *gen.Queries
}

func (r *authEmailsRepo) UpsertAuthEmail(ctx context.Context, a domain.AuthEmail) error {
	return r.q.UpsertAuthEmail(ctx, gen.UpsertAuthEmailParams{
		Email:    a.Email,
		KeyHash:  a.KeyHash,
		IssuedAt: utc(a.IssuedAt),
	})
}

func (r *authEmailsRepo) GetAuthEmail(ctx context.Context, email string) (domain.AuthEmail, error) {
	row, err := r.q.GetAuthEmail(ctx, email)
	if err != nil {
		return domain.AuthEmail{}, mapNotFound(err)
	}
	return domain.AuthEmail{Email: row.Email, KeyHash: row.KeyHash, IssuedAt: row.IssuedAt}, nil
}

func (r *authEmailsRepo) ExistsKeyHash(ctx context.Context, keyHash string) (bool, error) {
	n, err := r.q.CountAuthEmailsByKeyHash(ctx, keyHash)
	return n > 0, err
}
