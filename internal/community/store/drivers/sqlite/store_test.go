package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "hash",
		Nickname:     username + "-nick",
		Phone:        "010-" + username,
		Email:        username + "@example.com",
		Birth:        "1990-01-01",
		Authority:    domain.AuthorityGuest,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := seedUser(t, st, "alice")

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, domain.AuthorityGuest, got.Authority)
	require.False(t, got.CreatedAt.IsZero())

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := alice
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	ok, err := st.Users().ExistsEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = st.Users().ExistsPhone(ctx, "010-bob")
	require.NoError(t, err)
	require.False(t, ok)

	found, err := st.Users().FindUserByIdentity(ctx, "alice-nick", "1990-01-01", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "alice", found.Username)

	require.NoError(t, st.Users().UpdateAuthority(ctx, alice.ID, domain.AuthorityAdmin))
	require.ErrorIs(t, st.Users().UpdateAuthority(ctx, "missing", domain.AuthorityAdmin), store.ErrNotFound)

	require.NoError(t, st.Users().UpdateProfile(ctx, alice.ID, domain.ProfileUpdate{
		Nickname: "al", Phone: "010-0000", Email: "al@example.com", PasswordHash: "h2",
	}))
	got, err = st.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "al", got.Nickname)
	require.Equal(t, "h2", got.PasswordHash)
	require.True(t, got.IsAdmin())
}

func TestBoardsListingIsFilteredAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "alice")

	for i := range 12 {
		_, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{
			Kind: domain.BoardQna, AnimalID: domain.AnimalCat,
			Title: fmt.Sprintf("cat %d", i), Content: "c", UserID: u.ID, CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
	_, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{
		Kind: domain.BoardQna, AnimalID: domain.AnimalDog,
		Title: "dog", Content: "c", UserID: u.ID, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	cats := store.BoardFilter{Kind: domain.BoardQna, AnimalID: domain.AnimalCat}
	page0, total, err := st.Boards().ListEntries(ctx, cats, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
	require.Len(t, page0, 10)
	require.Equal(t, "cat 11", page0[0].Title)
	for i := 1; i < len(page0); i++ {
		require.Greater(t, page0[i-1].ID, page0[i].ID)
	}

	page1, _, err := st.Boards().ListEntries(ctx, cats, 1, 10)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	all, total, err := st.Boards().ListEntries(ctx, store.BoardFilter{Kind: domain.BoardQna}, 0, 100)
	require.NoError(t, err)
	require.EqualValues(t, 13, total)
	require.Len(t, all, 13)

	notices, total, err := st.Boards().ListEntries(ctx, store.BoardFilter{Kind: domain.BoardNotice}, 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, notices)
}

func TestBoardsCounterReplaceDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "alice")

	id, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{
		Kind: domain.BoardNotice, Title: "t", Content: "c", UserID: u.ID, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardNotice, id))
	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardNotice, id))
	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardNotice, 9999), "absent ids are a no-op")
	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardQna, id), "kind must match")

	e, err := st.Boards().GetEntry(ctx, domain.BoardNotice, id)
	require.NoError(t, err)
	require.EqualValues(t, 2, e.Counter)

	_, err = st.Boards().GetEntry(ctx, domain.BoardQna, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	e.Title, e.Content = "t2", "c2"
	require.NoError(t, st.Boards().ReplaceEntry(ctx, e))
	e2, err := st.Boards().GetEntry(ctx, domain.BoardNotice, id)
	require.NoError(t, err)
	require.Equal(t, "t2", e2.Title)
	require.EqualValues(t, 2, e2.Counter)

	require.NoError(t, st.Boards().DeleteEntry(ctx, domain.BoardNotice, id))
	require.ErrorIs(t, st.Boards().DeleteEntry(ctx, domain.BoardNotice, id), store.ErrNotFound)
}

func TestTopEntries(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "alice")

	ids := make([]int64, 4)
	for i := range ids {
		id, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{
			Kind: domain.BoardBoast, AnimalID: domain.AnimalDog, Title: "b", Content: "c", UserID: u.ID, CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		ids[i] = id
	}
	for range 3 {
		require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardBoast, ids[1]))
	}
	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardBoast, ids[0]))

	top, err := st.Boards().TopEntries(ctx, store.BoardFilter{Kind: domain.BoardBoast, AnimalID: domain.AnimalDog}, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, ids[1], top[0].ID)
	require.Equal(t, ids[0], top[1].ID)
	require.Equal(t, ids[3], top[2].ID, "ties are broken by id descending")
}

func TestCommentsDeleteByUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	q1, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{Kind: domain.BoardQna, AnimalID: 1, Title: "a", Content: "c", UserID: bob.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	q2, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{Kind: domain.BoardQna, AnimalID: 2, Title: "b", Content: "c", UserID: bob.ID, CreatedAt: time.Now()})
	require.NoError(t, err)

	for _, q := range []int64{q1, q2} {
		_, err := st.Comments().CreateComment(ctx, domain.Comment{QnaID: q, UserID: alice.ID, Content: "hi"})
		require.NoError(t, err)
	}
	_, err = st.Comments().CreateComment(ctx, domain.Comment{QnaID: q1, UserID: bob.ID, Content: "mine"})
	require.NoError(t, err)

	n, err := st.Comments().DeleteCommentsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	left, err := st.Comments().ListCommentsByQna(ctx, q1)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, bob.ID, left[0].UserID)

	_, err = st.Comments().CreateComment(ctx, domain.Comment{QnaID: 9999, UserID: bob.ID, Content: "x"})
	require.Error(t, err, "foreign keys are enforced")
}

func TestAuthEmailsLatestKeyWins(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.AuthEmails().UpsertAuthEmail(ctx, domain.AuthEmail{Email: "a@x.io", KeyHash: "k1", IssuedAt: time.Now()}))
	require.NoError(t, st.AuthEmails().UpsertAuthEmail(ctx, domain.AuthEmail{Email: "a@x.io", KeyHash: "k2", IssuedAt: time.Now()}))

	got, err := st.AuthEmails().GetAuthEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.Equal(t, "k2", got.KeyHash)

	ok, err := st.AuthEmails().ExistsKeyHash(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = st.AuthEmails().ExistsKeyHash(ctx, "k2")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = st.AuthEmails().GetAuthEmail(ctx, "b@x.io")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "alice")
	now := time.Now().UTC()

	live := domain.SessionRecord{ID: "live", Data: map[string]string{}, ExpiresAt: now.Add(time.Hour), CreatedAt: now, UpdatedAt: now}
	dead := domain.SessionRecord{ID: "dead", ExpiresAt: now.Add(-time.Hour), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Sessions().CreateSession(ctx, live))
	require.NoError(t, st.Sessions().CreateSession(ctx, dead))

	_, err := st.Sessions().GetSession(ctx, "dead")
	require.ErrorIs(t, err, store.ErrNotFound)

	live.UserID = u.ID
	live.Data = map[string]string{"pw_reset_user": u.ID}
	require.NoError(t, st.Sessions().SaveSession(ctx, live))

	got, err := st.Sessions().GetSession(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.UserID)
	require.Equal(t, u.ID, got.Data["pw_reset_user"])

	n, err := st.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, st.Sessions().DeleteSession(ctx, "live"))
	require.ErrorIs(t, st.Sessions().SaveSession(ctx, live), store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "alice")

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Boards().CreateEntry(ctx, domain.BoardEntry{Kind: domain.BoardNotice, Title: "t", Content: "c", UserID: u.ID, CreatedAt: time.Now()})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, total, err := st.Boards().ListEntries(ctx, store.BoardFilter{Kind: domain.BoardNotice}, 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Boards().CreateEntry(ctx, domain.BoardEntry{Kind: domain.BoardNotice, Title: "t", Content: "c", UserID: u.ID, CreatedAt: time.Now()})
		return err
	}))
	_, total, err = st.Boards().ListEntries(ctx, store.BoardFilter{Kind: domain.BoardNotice}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
