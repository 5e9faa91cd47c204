package sqlite

import (
	"context"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.SessionRecord) error {
	data, err := encodeData(s.Data)
	if err != nil {
		return err
	}
	return mapConflict(r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:        s.ID,
		UserID:    mapStringNull(s.UserID),
		Data:      data,
		ExpiresAt: utc(s.ExpiresAt),
		CreatedAt: utc(s.CreatedAt),
		UpdatedAt: utc(s.UpdatedAt),
	}))
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.SessionRecord, error) {
	row, err := r.q.GetSession(ctx, gen.GetSessionParams{ID: id, Now: time.Now().UTC()})
	if err != nil {
		return domain.SessionRecord{}, mapNotFound(err)
	}
	return mapSession(row)
}

func (r *sessionsRepo) SaveSession(ctx context.Context, s domain.SessionRecord) error {
	data, err := encodeData(s.Data)
	if err != nil {
		return err
	}
	return expectOne(r.q.UpdateSession(ctx, gen.UpdateSessionParams{
		UserID:    mapStringNull(s.UserID),
		Data:      data,
		ExpiresAt: utc(s.ExpiresAt),
		UpdatedAt: utc(s.UpdatedAt),
		ID:        s.ID,
	}))
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	return r.q.DeleteSession(ctx, id)
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.DeleteExpiredSessions(ctx, utc(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
