package service

import (
	"context"
	"testing"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/stretchr/testify/require"
)

func joinReq(username, key string) petsdk.JoinRequest {
	return petsdk.JoinRequest{
		Username: username,
		Password: "pass1234",
		Nickname: username + "nick",
		Phone:    phoneFor("010-5555", username),
		Email:    username + "@example.com",
		Birth:    "1995-05-05",
		AuthKey:  key,
	}
}

func TestJoin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key, err := f.emails.IssueOrReplace(ctx, "ssar@example.com")
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	require.Contains(t, f.mailer.sent[0].HTML, key)

	t.Run("wrong key writes nothing", func(t *testing.T) {
		_, err := f.users.Join(ctx, joinReq("ssar", "000000x"))
		require.ErrorIs(t, err, ErrAuthKeyMismatch)

		exists, err := f.store.Users().ExistsUsername(ctx, "ssar")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("key is checked before fields", func(t *testing.T) {
		req := joinReq("ssar", "bad")
		req.Email = "not-an-email"
		_, err := f.users.Join(ctx, req)
		require.ErrorIs(t, err, ErrAuthKeyMismatch)
	})

	t.Run("invalid fields", func(t *testing.T) {
		req := joinReq("ssar", key)
		req.Birth = "05/05/1995"
		_, err := f.users.Join(ctx, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "birth")
	})

	admin, err := f.users.Join(ctx, joinReq("ssar", key))
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())
	require.NotEqual(t, "pass1234", admin.PasswordHash)

	t.Run("key is not bound to the email it was sent to", func(t *testing.T) {
		guest, err := f.users.Join(ctx, joinReq("love", key))
		require.NoError(t, err)
		require.Equal(t, domain.AuthorityGuest, guest.Authority)
	})

	t.Run("duplicates", func(t *testing.T) {
		_, err := f.users.Join(ctx, joinReq("ssar", key))
		require.ErrorIs(t, err, ErrUsernameTaken)
		require.ErrorIs(t, err, ErrDuplicate)

		req := joinReq("cos", key)
		req.Email = "ssar@example.com"
		_, err = f.users.Join(ctx, req)
		require.ErrorIs(t, err, ErrEmailTaken)

		req = joinReq("cos", key)
		req.Phone = phoneFor("010-5555", "ssar")
		_, err = f.users.Join(ctx, req)
		require.ErrorIs(t, err, ErrPhoneTaken)
	})
}

func TestAdminUsernameIsConfigurable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.users.AdminUsername = "root"

	key, err := f.emails.IssueOrReplace(ctx, "a@example.com")
	require.NoError(t, err)

	u, err := f.users.Join(ctx, joinReq("ssar", key))
	require.NoError(t, err)
	require.False(t, u.IsAdmin())

	u, err = f.users.Join(ctx, joinReq("root", key))
	require.NoError(t, err)
	require.True(t, u.IsAdmin())
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)
	sess := newSession()

	_, err := f.users.Login(ctx, sess, petsdk.LoginRequest{Username: "love", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.users.Login(ctx, sess, petsdk.LoginRequest{Username: "ghost", Password: "pass1234"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, ok := sess.Get()
	require.False(t, ok)

	_, err = f.users.Login(ctx, sess, petsdk.LoginRequest{Username: "love", Password: "pass1234"})
	require.NoError(t, err)
	got, ok := sess.Get()
	require.True(t, ok)
	require.Equal(t, u.ID, got.ID)

	require.NoError(t, sess.SetValue(ctx, "k", "v"))
	require.NoError(t, f.users.Logout(ctx, sess))
	_, ok = sess.Get()
	require.False(t, ok)
	require.Empty(t, sess.Value("k"))
}

func TestAccountRecovery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	name, err := f.users.FindUsername(ctx, petsdk.IDFindRequest{Name: u.Nickname, Birth: u.Birth, Email: u.Email})
	require.NoError(t, err)
	require.Equal(t, "love", name)

	_, err = f.users.FindUsername(ctx, petsdk.IDFindRequest{Name: u.Nickname, Birth: "2000-01-01", Email: u.Email})
	require.ErrorIs(t, err, ErrNotFound)

	sess := newSession()
	require.ErrorIs(t, f.users.ChangePassword(ctx, sess, petsdk.PwChangeRequest{Password: "newpass"}), ErrNoPendingReset)
	require.ErrorIs(t, ErrNoPendingReset, ErrUnauthenticated)

	err = f.users.StartPasswordReset(ctx, sess, petsdk.PwFindRequest{
		Username: "love", Name: "wrong", Birth: u.Birth, Email: u.Email,
	})
	require.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, f.users.StartPasswordReset(ctx, sess, petsdk.PwFindRequest{
		Username: "love", Name: u.Nickname, Birth: u.Birth, Email: u.Email,
	}))
	require.Equal(t, u.ID, sess.Value(SessionKeyPendingReset))

	// Another client's session has nothing pending.
	require.ErrorIs(t, f.users.ChangePassword(ctx, newSession(), petsdk.PwChangeRequest{Password: "newpass"}), ErrNoPendingReset)

	require.NoError(t, f.users.ChangePassword(ctx, sess, petsdk.PwChangeRequest{Password: "newpass"}))
	require.Empty(t, sess.Value(SessionKeyPendingReset))

	_, err = f.users.Login(ctx, newSession(), petsdk.LoginRequest{Username: "love", Password: "newpass"})
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)
	other := f.seedUser(t, "cos", domain.AuthorityGuest)

	oldKey, err := f.emails.IssueOrReplace(ctx, "new@example.com")
	require.NoError(t, err)
	key, err := f.emails.IssueOrReplace(ctx, "new@example.com")
	require.NoError(t, err)

	req := petsdk.UserUpdateRequest{
		Email:    "new@example.com",
		AuthKey:  key,
		Nickname: "renamed",
		Phone:    "010-9999-0000",
		Password: "changed1",
	}

	_, err = f.users.UpdateProfile(ctx, newSession(), u.ID, req)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.users.UpdateProfile(ctx, as(u), other.ID, req)
	require.ErrorIs(t, err, ErrForbidden)

	if oldKey != key {
		stale := req
		stale.AuthKey = oldKey
		_, err = f.users.UpdateProfile(ctx, as(u), u.ID, stale)
		require.ErrorIs(t, err, ErrAuthKeyMismatch)
	}

	taken := req
	taken.Phone = other.Phone
	_, err = f.users.UpdateProfile(ctx, as(u), u.ID, taken)
	require.ErrorIs(t, err, ErrPhoneTaken)

	sess := as(u)
	updated, err := f.users.UpdateProfile(ctx, sess, u.ID, req)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Nickname)

	cur, ok := sess.Get()
	require.True(t, ok)
	require.Equal(t, "new@example.com", cur.Email)

	_, err = f.users.Login(ctx, newSession(), petsdk.LoginRequest{Username: "love", Password: "changed1"})
	require.NoError(t, err)
}

func TestPromoteAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.seedUser(t, "ssar", domain.AuthorityAdmin)
	guest := f.seedUser(t, "love", domain.AuthorityGuest)

	require.ErrorIs(t, f.users.PromoteAdmin(ctx, newSession(), guest.ID), ErrUnauthenticated)
	require.ErrorIs(t, f.users.PromoteAdmin(ctx, as(guest), guest.ID), ErrNotAdmin)
	require.ErrorIs(t, f.users.PromoteAdmin(ctx, as(admin), "missing"), ErrNotFound)

	require.NoError(t, f.users.PromoteAdmin(ctx, as(admin), guest.ID))
	got, err := f.store.Users().GetUserByID(ctx, guest.ID)
	require.NoError(t, err)
	require.True(t, got.IsAdmin())
}

func TestAuthEmailLatestKeyWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.emails.IssueOrReplace(ctx, "bad address")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	first, err := f.emails.IssueOrReplace(ctx, "a@example.com")
	require.NoError(t, err)
	second, err := f.emails.IssueOrReplace(ctx, "a@example.com")
	require.NoError(t, err)

	ok, err := f.emails.IsLatest(ctx, "a@example.com", second)
	require.NoError(t, err)
	require.True(t, ok)

	if first != second {
		ok, err = f.emails.IsLatest(ctx, "a@example.com", first)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = f.emails.IsValid(ctx, first)
		require.NoError(t, err)
		require.False(t, ok)
	}

	ok, err = f.emails.IsLatest(ctx, "b@example.com", second)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = f.emails.IsValid(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)

	rec, err := f.store.AuthEmails().GetAuthEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotEqual(t, second, rec.KeyHash)
	_, err = f.store.AuthEmails().GetAuthEmail(ctx, "b@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
