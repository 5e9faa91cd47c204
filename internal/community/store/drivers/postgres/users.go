package postgres

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
)

const userColumns = `id, username, password_hash, nickname, phone, email, birth, authority, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var authority string
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Nickname,
		&u.Phone,
		&u.Email,
		&u.Birth,
		&authority,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	u.Authority = domain.Authority(authority)
	return u, mapNotFound(err)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, nickname, phone, email, birth, authority)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.PasswordHash, u.Nickname, u.Phone, u.Email, u.Birth, string(u.Authority),
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r *usersRepo) FindUserByIdentity(ctx context.Context, nickname, birth, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE nickname = $1 AND birth = $2 AND email = $3 LIMIT 1`,
		nickname, birth, email,
	))
}

func (r *usersRepo) exists(ctx context.Context, column, value string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE `+column+` = $1)`, value,
	).Scan(&ok)
	return ok, err
}

func (r *usersRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *usersRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *usersRepo) ExistsPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone", phone)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate) error {
	err := expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET nickname = $1, phone = $2, email = $3, password_hash = $4, updated_at = now()
		 WHERE id = $5`,
		p.Nickname, p.Phone, p.Email, p.PasswordHash, id,
	))
	return mapConflict(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, id,
	))
}

func (r *usersRepo) UpdateAuthority(ctx context.Context, id string, a domain.Authority) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET authority = $1, updated_at = now() WHERE id = $2`, string(a), id,
	))
}
