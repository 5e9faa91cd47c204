package sqlite

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Phone:        u.Phone,
		Email:        u.Email,
		Birth:        u.Birth,
		Authority:    string(u.Authority),
	})
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) FindUserByIdentity(ctx context.Context, nickname, birth, email string) (domain.User, error) {
	row, err := r.q.GetUserByIdentity(ctx, gen.GetUserByIdentityParams{
		Nickname: nickname,
		Birth:    birth,
		Email:    email,
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.q.CountUsersByUsername(ctx, username)
	return n > 0, err
}

func (r *usersRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.q.CountUsersByEmail(ctx, email)
	return n > 0, err
}

func (r *usersRepo) ExistsPhone(ctx context.Context, phone string) (bool, error) {
	n, err := r.q.CountUsersByPhone(ctx, phone)
	return n > 0, err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate) error {
	err := expectOne(r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		Nickname:     p.Nickname,
		Phone:        p.Phone,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		ID:           id,
	}))
	return mapConflict(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return expectOne(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: hash,
		ID:           id,
	}))
}

func (r *usersRepo) UpdateAuthority(ctx context.Context, id string, a domain.Authority) error {
	return expectOne(r.q.UpdateUserAuthority(ctx, gen.UpdateUserAuthorityParams{
		Authority: string(a),
		ID:        id,
	}))
}
