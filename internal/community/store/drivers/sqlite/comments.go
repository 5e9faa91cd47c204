package sqlite

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

type commentsRepo struct {
	q *gen.Queries
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) (int64, error) {
	return r.q.CreateComment(ctx, gen.CreateCommentParams{
		QnaID:   c.QnaID,
		UserID:  c.UserID,
		Content: c.Content,
	})
}

func (r *commentsRepo) ListCommentsByQna(ctx context.Context, qnaID int64) ([]domain.Comment, error) {
	rows, err := r.q.ListCommentsByQna(ctx, qnaID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapComment(row))
	}
	return out, nil
}

func (r *commentsRepo) DeleteCommentsByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.q.DeleteCommentsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
