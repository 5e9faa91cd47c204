package sqlite

import (
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

// txStore hands out repositories bound to one *sql.Tx.
type txStore struct {
	q *gen.Queries
}

func newTx(q *gen.Queries) *txStore { return &txStore{q: q} }

func (t *txStore) Users() store.Users           { return &usersRepo{q: t.q} }
func (t *txStore) Boards() store.Boards         { return &boardsRepo{q: t.q} }
func (t *txStore) Comments() store.Comments     { return &commentsRepo{q: t.q} }
func (t *txStore) AuthEmails() store.AuthEmails { return &authEmailsRepo{q: t.q} }
func (t *txStore) Sessions() store.Sessions     { return &sessionsRepo{q: t.q} }
