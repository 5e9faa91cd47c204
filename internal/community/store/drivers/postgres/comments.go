package postgres

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
)

type commentsRepo struct {
	db dbtx
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (qna_id, user_id, content) VALUES ($1, $2, $3) RETURNING id`,
		c.QnaID, c.UserID, c.Content,
	).Scan(&id)
	return id, err
}

func (r *commentsRepo) ListCommentsByQna(ctx context.Context, qnaID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, qna_id, user_id, content, created_at FROM comments WHERE qna_id = $1 ORDER BY id ASC`,
		qnaID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.QnaID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentsRepo) DeleteCommentsByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
