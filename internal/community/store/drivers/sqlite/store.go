package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens dsn with foreign keys enforced on every pooled connection
// and timestamps written in sqlite's own format. An in-memory database is
// pinned to a single connection, otherwise each connection would see its
// own empty database.
func NewStore(dsn string) (*Store, error) {
	dsn = withParams(dsn)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func withParams(dsn string) string {
	params := []struct{ marker, param string }{
		{"foreign_keys", "_pragma=foreign_keys(1)"},
		{"_time_format", "_time_format=sqlite"},
	}
	for _, p := range params {
		if strings.Contains(dsn, p.marker) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.param
	}
	return dsn
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(newTx(s.q.WithTx(tx))); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users           { return &usersRepo{q: s.q} }
func (s *Store) Boards() store.Boards         { return &boardsRepo{q: s.q} }
func (s *Store) Comments() store.Comments     { return &commentsRepo{q: s.q} }
func (s *Store) AuthEmails() store.AuthEmails { return &authEmailsRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions     { return &sessionsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapConflict(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// expectOne turns an UPDATE/DELETE that touched nothing into ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Nickname:     row.Nickname,
		Phone:        row.Phone,
		Email:        row.Email,
		Birth:        row.Birth,
		Authority:    domain.Authority(row.Authority),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapEntry(row gen.BoardEntry) domain.BoardEntry {
	return domain.BoardEntry{
		ID:        row.ID,
		Kind:      domain.BoardKind(row.Kind),
		AnimalID:  int(row.AnimalID),
		Title:     row.Title,
		Content:   row.Content,
		Counter:   row.Counter,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
}

func mapEntries(rows []gen.BoardEntry) []domain.BoardEntry {
	out := make([]domain.BoardEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapEntry(r))
	}
	return out
}

func mapComment(row gen.Comment) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		QnaID:     row.QnaID,
		UserID:    row.UserID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}

func mapSession(row gen.Session) (domain.SessionRecord, error) {
	data := map[string]string{}
	if row.Data != "" {
		if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
			return domain.SessionRecord{}, err
		}
	}
	return domain.SessionRecord{
		ID:        row.ID,
		UserID:    row.UserID.String,
		Data:      data,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func encodeData(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func utc(t time.Time) time.Time { return t.UTC() }
