package store

import (
	"context"
	"errors"
	"time"

	"github.com/petproject/community/internal/community/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Sub-repositories are reached through methods so a
// transaction scoped Store can hand out the same repositories.
type Store interface {
	Users() Users
	Boards() Boards
	Comments() Comments
	AuthEmails() AuthEmails
	Sessions() Sessions

	ApplyMigrations() error

	// WithTx runs fn inside a transaction. fn's error rolls back, nil
	// commits. The Tx handed to fn must not start another transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is the transaction scoped Store handed to WithTx callbacks.
type Tx interface {
	Users() Users
	Boards() Boards
	Comments() Comments
	AuthEmails() AuthEmails
	Sessions() Sessions
}

type Users interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// FindUserByIdentity returns the user matching every identity field; used by
	// account recovery.
	FindUserByIdentity(ctx context.Context, nickname, birth, email string) (domain.User, error)

	ExistsUsername(ctx context.Context, username string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsPhone(ctx context.Context, phone string) (bool, error)

	UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateAuthority(ctx context.Context, id string, a domain.Authority) error
}

// BoardFilter narrows a listing. AnimalID zero means every partition.
type BoardFilter struct {
	Kind     domain.BoardKind
	AnimalID int
}

type Boards interface {
	// CreateEntry inserts e and returns its id. Counter starts at zero.
	CreateEntry(ctx context.Context, e domain.BoardEntry) (int64, error)
	GetEntry(ctx context.Context, kind domain.BoardKind, id int64) (domain.BoardEntry, error)

	// ListEntries returns one page ordered by id descending plus the total
	// number of matching entries.
	ListEntries(ctx context.Context, f BoardFilter, page, size int) ([]domain.BoardEntry, int64, error)

	// TopEntries returns the n most viewed entries, ties by id descending.
	TopEntries(ctx context.Context, f BoardFilter, n int) ([]domain.BoardEntry, error)

	// ReplaceEntry overwrites title, content, owner, counter and created_at.
	ReplaceEntry(ctx context.Context, e domain.BoardEntry) error

	// DeleteEntry removes the entry; ErrNotFound if nothing was removed.
	DeleteEntry(ctx context.Context, kind domain.BoardKind, id int64) error

	// IncrementCounter runs counter = counter + 1 and reports nothing when
	// the id is absent.
	IncrementCounter(ctx context.Context, kind domain.BoardKind, id int64) error
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) (int64, error)
	ListCommentsByQna(ctx context.Context, qnaID int64) ([]domain.Comment, error)

	// DeleteCommentsByUser removes every comment authored by userID and
	// returns how many went.
	DeleteCommentsByUser(ctx context.Context, userID string) (int64, error)
}

type AuthEmails interface {
	// UpsertAuthEmail replaces the slot for email.
	UpsertAuthEmail(ctx context.Context, a domain.AuthEmail) error
	GetAuthEmail(ctx context.Context, email string) (domain.AuthEmail, error)

	// ExistsKeyHash reports whether any slot currently holds keyHash.
	ExistsKeyHash(ctx context.Context, keyHash string) (bool, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.SessionRecord) error

	// GetSession returns only unexpired sessions.
	GetSession(ctx context.Context, id string) (domain.SessionRecord, error)
	SaveSession(ctx context.Context, s domain.SessionRecord) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
