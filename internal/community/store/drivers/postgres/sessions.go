package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/petproject/community/internal/community/domain"
)

type sessionsRepo struct {
	db dbtx
}

func encodeData(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.SessionRecord) error {
	data, err := encodeData(s.Data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, data, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, nullString(s.UserID), data, s.ExpiresAt.UTC(), s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.SessionRecord, error) {
	var (
		s      domain.SessionRecord
		userID sql.NullString
		data   string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, data, expires_at, created_at, updated_at FROM sessions
		 WHERE id = $1 AND expires_at > now()`, id,
	).Scan(&s.ID, &userID, &data, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.SessionRecord{}, mapNotFound(err)
	}

	s.UserID = userID.String
	s.Data = map[string]string{}
	if err := json.Unmarshal([]byte(data), &s.Data); err != nil {
		return domain.SessionRecord{}, err
	}
	return s, nil
}

func (r *sessionsRepo) SaveSession(ctx context.Context, s domain.SessionRecord) error {
	data, err := encodeData(s.Data)
	if err != nil {
		return err
	}
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE sessions SET user_id = $1, data = $2, expires_at = $3, updated_at = $4 WHERE id = $5`,
		nullString(s.UserID), data, s.ExpiresAt.UTC(), s.UpdatedAt.UTC(), s.ID,
	))
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
