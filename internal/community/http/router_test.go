package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/petproject/community/pkg/petsdk"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := newServer(t)
	c := s.client(t)
	ctx := context.Background()

	require.NoError(t, c.Livez(ctx))
	require.NoError(t, c.Readyz(ctx))
}

func TestAccountFlow(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	c, u := s.join(t, "ssar", 1)
	require.Equal(t, "admin", string(u.Authority))

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "ssar", me.Username)
	require.Equal(t, u.ID, me.ID)

	t.Run("wrong password stays on the form", func(t *testing.T) {
		res, err := s.client(t).Login(ctx, petsdk.LoginRequest{Username: "ssar", Password: "nope1234"})
		require.NoError(t, err)
		require.True(t, res.Back)
		require.Equal(t, "wrong id or password", res.Alert)
	})

	t.Run("join with a stale key writes nothing", func(t *testing.T) {
		res, err := s.client(t).Join(ctx, petsdk.JoinRequest{
			Username: "cos",
			Password: "pass1234",
			Nickname: "cosnick",
			Phone:    "010-2222-3333",
			Email:    "cos@example.com",
			Birth:    "1990-01-01",
			AuthKey:  "not-a-key",
		})
		require.NoError(t, err)
		require.True(t, res.Back)

		_, err = s.store.Users().GetUserByUsername(ctx, "cos")
		require.Error(t, err)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		require.NoError(t, c.Logout(ctx))
		_, err := c.Me(ctx)
		requireStatus(t, err, http.StatusUnauthorized)
	})
}

func TestAuthEmailCheck(t *testing.T) {
	s := newServer(t)
	c := s.client(t)
	ctx := context.Background()

	require.NoError(t, c.IssueAuthKey(ctx, "love@example.com"))
	first := s.mailer.lastKey(t, "love@example.com")
	require.NoError(t, c.IssueAuthKey(ctx, "love@example.com"))
	latest := s.mailer.lastKey(t, "love@example.com")

	ok, err := c.CheckAuthKey(ctx, "love@example.com", latest)
	require.NoError(t, err)
	require.True(t, ok)

	if first != latest {
		ok, err = c.CheckAuthKey(ctx, "love@example.com", first)
		require.NoError(t, err)
		require.False(t, ok)
	}

	err = c.IssueAuthKey(ctx, "not an address")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestNoticeAuthority(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	admin, _ := s.join(t, "ssar", 1)
	guest, _ := s.join(t, "cos", 2)
	req := petsdk.BoardSaveRequest{Title: "hello", Content: "<p>first notice</p>"}

	res, err := s.client(t).CreateNotice(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "/user/loginForm", res.Href)

	res, err = guest.CreateNotice(ctx, req)
	require.NoError(t, err)
	require.True(t, res.Back)
	require.Equal(t, "admin only", res.Alert)

	res, err = admin.CreateNotice(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "/notice?page=0", res.Href)

	page, err := s.client(t).ListNotices(ctx, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 1, page.StartBlock)
	require.Equal(t, 10, page.EndBlock)
	id := page.Items[0].ID

	d, err := s.client(t).Notice(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "first notice", d.Entry.Content)
	require.EqualValues(t, 1, d.Entry.Counter)
	require.Equal(t, "ssar", d.Entry.Author.Username)

	err = guest.UpdateNotice(ctx, id, petsdk.BoardSaveRequest{Title: "mine", Content: "x"})
	requireStatus(t, err, http.StatusForbidden)

	err = admin.UpdateNotice(ctx, id, petsdk.BoardSaveRequest{Title: "", Content: "x"})
	requireStatus(t, err, http.StatusBadRequest)

	require.NoError(t, admin.UpdateNotice(ctx, id, petsdk.BoardSaveRequest{Title: "edited", Content: "x"}))

	require.NoError(t, admin.DeleteNotice(ctx, id))
	_, err = s.client(t).Notice(ctx, id)
	requireStatus(t, err, http.StatusNotFound)

	err = admin.DeleteNotice(ctx, id)
	requireStatus(t, err, http.StatusNotFound)
}

func TestQnaCommentsAndDelete(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	owner, _ := s.join(t, "love", 1)
	other, _ := s.join(t, "cos", 2)

	res, err := owner.CreateQna(ctx, 1, petsdk.BoardSaveRequest{Title: "first", Content: "q1"})
	require.NoError(t, err)
	require.Equal(t, "/1/qna?page=0", res.Href)
	_, err = owner.CreateQna(ctx, 1, petsdk.BoardSaveRequest{Title: "second", Content: "q2"})
	require.NoError(t, err)

	page, err := owner.ListQna(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	second, first := page.Items[0].ID, page.Items[1].ID
	require.Greater(t, second, first)

	res, err = owner.CreateComment(ctx, 1, first, "mine on first")
	require.NoError(t, err)
	require.Contains(t, res.Href, "/1/qna/")
	_, err = owner.CreateComment(ctx, 1, second, "mine on second")
	require.NoError(t, err)
	_, err = other.CreateComment(ctx, 1, second, "theirs on second")
	require.NoError(t, err)

	res, err = s.client(t).CreateComment(ctx, 1, first, "anon")
	require.NoError(t, err)
	require.Equal(t, "/user/loginForm", res.Href)

	err = other.DeleteQna(ctx, first)
	requireStatus(t, err, http.StatusForbidden)

	err = other.UpdateQna(ctx, 1, second, petsdk.BoardSaveRequest{Title: "taken", Content: "x"})
	requireStatus(t, err, http.StatusForbidden)
	require.NoError(t, owner.UpdateQna(ctx, 1, second, petsdk.BoardSaveRequest{Title: "second, edited", Content: "q2"}))

	require.NoError(t, owner.DeleteQna(ctx, first))

	d, err := owner.Qna(ctx, 1, second)
	require.NoError(t, err)
	require.Len(t, d.Comments, 1)
	require.Equal(t, "theirs on second", d.Comments[0].Content)

	t.Run("dog board is separate", func(t *testing.T) {
		page, err := owner.ListQna(ctx, 2, 0)
		require.NoError(t, err)
		require.Empty(t, page.Items)
	})
}

func TestUnknownAnimalGoesHome(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c, _ := s.join(t, "love", 1)

	var redirect *petsdk.RedirectError

	_, err := c.ListQna(ctx, 9, 0)
	require.ErrorAs(t, err, &redirect)
	require.Equal(t, "/main", redirect.Location)

	_, err = c.CreateQna(ctx, 9, petsdk.BoardSaveRequest{Title: "t", Content: "c"})
	require.ErrorAs(t, err, &redirect)

	page, err := c.ListQna(ctx, 1, 0)
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestUnknownBoardIs404(t *testing.T) {
	s := newServer(t)

	resp, err := http.Get(s.URL + "/1/gallery")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBoastRanking(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c, _ := s.join(t, "love", 1)

	for _, title := range []string{"a", "b", "c"} {
		_, err := c.CreateBoast(ctx, 2, petsdk.BoardSaveRequest{Title: title, Content: "look"})
		require.NoError(t, err)
	}
	page, err := c.ListBoasts(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	popular := page.Items[2].ID
	for range 3 {
		_, err := c.Boast(ctx, 2, popular)
		require.NoError(t, err)
	}

	// Editing keeps the view count.
	require.NoError(t, c.UpdateBoast(ctx, 2, popular, petsdk.BoardSaveRequest{Title: "a again", Content: "look"}))
	d, err := c.Boast(ctx, 2, popular)
	require.NoError(t, err)
	require.EqualValues(t, 4, d.Entry.Counter)

	top, err := c.BoastRank(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, popular, top[0].ID)

	m, err := s.client(t).Main(ctx)
	require.NoError(t, err)
	require.Equal(t, popular, m.Overall[0].ID)
	require.Len(t, m.ByAnimal, 2)
	require.Empty(t, m.ByAnimal[0].Entries)
	require.Len(t, m.ByAnimal[1].Entries, 3)

	require.NoError(t, c.DeleteBoast(ctx, popular))
}

func TestPasswordRecovery(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	_, u := s.join(t, "love", 1)

	c := s.client(t)
	name, err := c.FindUsername(ctx, petsdk.IDFindRequest{Name: u.Nickname, Birth: u.Birth, Email: u.Email})
	require.NoError(t, err)
	require.Equal(t, "love", name)

	err = c.ChangePassword(ctx, "newpass99")
	requireStatus(t, err, http.StatusUnauthorized)

	require.NoError(t, c.StartPasswordReset(ctx, petsdk.PwFindRequest{
		Username: "love", Name: u.Nickname, Birth: u.Birth, Email: u.Email,
	}))
	require.NoError(t, c.ChangePassword(ctx, "newpass99"))

	res, err := s.client(t).Login(ctx, petsdk.LoginRequest{Username: "love", Password: "newpass99"})
	require.NoError(t, err)
	require.Equal(t, "/", res.Href)
}

func TestProfileUpdateAndPromotion(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	admin, _ := s.join(t, "ssar", 1)
	c, u := s.join(t, "love", 2)

	require.NoError(t, c.IssueAuthKey(ctx, "new@example.com"))
	key := s.mailer.lastKey(t, "new@example.com")

	_, err := c.UpdateUser(ctx, "someone-else", petsdk.UserUpdateRequest{
		Email: "new@example.com", AuthKey: key, Nickname: "n", Phone: "010-9999-0000", Password: "pass1234",
	})
	requireStatus(t, err, http.StatusForbidden)

	got, err := c.UpdateUser(ctx, u.ID, petsdk.UserUpdateRequest{
		Email: "new@example.com", AuthKey: key, Nickname: "renamed", Phone: "010-9999-0000", Password: "pass1234",
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Nickname)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", me.Email)

	err = c.PromoteAdmin(ctx, u.ID)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, admin.PromoteAdmin(ctx, u.ID))
	me, err = c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin", me.Authority)
}

func TestRootRedirectsToMain(t *testing.T) {
	s := newServer(t)
	c := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	resp, err := c.Get(s.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.True(t, strings.HasSuffix(resp.Header.Get("Location"), "/main"))
}
