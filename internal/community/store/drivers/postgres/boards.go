package postgres

import (
	"context"
	"database/sql"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
)

const entryColumns = `id, kind, animal_id, title, content, counter, user_id, created_at`

type boardsRepo struct {
	db dbtx
}

func scanEntry(row rowScanner) (domain.BoardEntry, error) {
	var e domain.BoardEntry
	var kind string
	err := row.Scan(&e.ID, &kind, &e.AnimalID, &e.Title, &e.Content, &e.Counter, &e.UserID, &e.CreatedAt)
	e.Kind = domain.BoardKind(kind)
	return e, err
}

func scanEntries(rows *sql.Rows) ([]domain.BoardEntry, error) {
	defer rows.Close()
	var out []domain.BoardEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *boardsRepo) CreateEntry(ctx context.Context, e domain.BoardEntry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO board_entries (kind, animal_id, title, content, counter, user_id, created_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6)
		 RETURNING id`,
		string(e.Kind), e.AnimalID, e.Title, e.Content, e.UserID, e.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

func (r *boardsRepo) GetEntry(ctx context.Context, kind domain.BoardKind, id int64) (domain.BoardEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM board_entries WHERE kind = $1 AND id = $2`, string(kind), id,
	))
	return e, mapNotFound(err)
}

func (r *boardsRepo) ListEntries(
	ctx context.Context,
	f store.BoardFilter,
	page, size int,
) ([]domain.BoardEntry, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM board_entries WHERE kind = $1 AND ($2 = 0 OR animal_id = $2)`,
		string(f.Kind), f.AnimalID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM board_entries
		 WHERE kind = $1 AND ($2 = 0 OR animal_id = $2)
		 ORDER BY id DESC
		 LIMIT $3 OFFSET $4`,
		string(f.Kind), f.AnimalID, size, page*size,
	)
	if err != nil {
		return nil, 0, err
	}
	entries, err := scanEntries(rows)
	return entries, total, err
}

func (r *boardsRepo) TopEntries(ctx context.Context, f store.BoardFilter, n int) ([]domain.BoardEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM board_entries
		 WHERE kind = $1 AND ($2 = 0 OR animal_id = $2)
		 ORDER BY counter DESC, id DESC
		 LIMIT $3`,
		string(f.Kind), f.AnimalID, n,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (r *boardsRepo) ReplaceEntry(ctx context.Context, e domain.BoardEntry) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE board_entries
		 SET animal_id = $1, title = $2, content = $3, user_id = $4, counter = $5, created_at = $6
		 WHERE kind = $7 AND id = $8`,
		e.AnimalID, e.Title, e.Content, e.UserID, e.Counter, e.CreatedAt.UTC(), string(e.Kind), e.ID,
	))
}

func (r *boardsRepo) DeleteEntry(ctx context.Context, kind domain.BoardKind, id int64) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM board_entries WHERE kind = $1 AND id = $2`, string(kind), id,
	))
}

func (r *boardsRepo) IncrementCounter(ctx context.Context, kind domain.BoardKind, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE board_entries SET counter = counter + 1 WHERE kind = $1 AND id = $2`, string(kind), id,
	)
	return err
}
