package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newContainerStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("community"),
		tcpostgres.WithUsername("community"),
		tcpostgres.WithPassword("community"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	st, err := NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestPostgresBoardLifecycle(t *testing.T) {
	st := newContainerStore(t)
	ctx := context.Background()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "ssar",
		PasswordHash: "hash",
		Nickname:     "ssar",
		Phone:        "010-0000",
		Email:        "ssar@example.com",
		Birth:        "1990-01-01",
		Authority:    domain.AuthorityAdmin,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	require.ErrorIs(t, st.Users().CreateUser(ctx, u), store.ErrAlreadyExists)

	var ids []int64
	for i := 0; i < 12; i++ {
		id, err := st.Boards().CreateEntry(ctx, domain.BoardEntry{
			Kind:      domain.BoardQna,
			AnimalID:  domain.AnimalCat,
			Title:     "title",
			Content:   "content",
			UserID:    u.ID,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	items, total, err := st.Boards().ListEntries(ctx, store.BoardFilter{Kind: domain.BoardQna, AnimalID: domain.AnimalCat}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(12), total)
	require.Len(t, items, 2)
	require.Equal(t, ids[1], items[0].ID)

	require.NoError(t, st.Boards().IncrementCounter(ctx, domain.BoardQna, ids[0]))
	e, err := st.Boards().GetEntry(ctx, domain.BoardQna, ids[0])
	require.NoError(t, err)
	require.Equal(t, int64(1), e.Counter)

	_, err = st.Comments().CreateComment(ctx, domain.Comment{QnaID: ids[0], UserID: u.ID, Content: "hi"})
	require.NoError(t, err)

	err = st.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Comments().DeleteCommentsByUser(ctx, u.ID); err != nil {
			return err
		}
		return tx.Boards().DeleteEntry(ctx, domain.BoardQna, ids[0])
	})
	require.NoError(t, err)

	_, err = st.Boards().GetEntry(ctx, domain.BoardQna, ids[0])
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresSessionsExpire(t *testing.T) {
	st := newContainerStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.Sessions().CreateSession(ctx, domain.SessionRecord{
		ID: "live", ExpiresAt: now.Add(time.Hour), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.SessionRecord{
		ID: "dead", ExpiresAt: now.Add(-time.Hour), CreatedAt: now, UpdatedAt: now,
	}))

	_, err := st.Sessions().GetSession(ctx, "dead")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := st.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	got, err := st.Sessions().GetSession(ctx, "live")
	require.NoError(t, err)
	require.Empty(t, got.Data)
}
