package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/stretchr/testify/require"
)

func post(title, content string) petsdk.BoardSaveRequest {
	return petsdk.BoardSaveRequest{Title: title, Content: content}
}

func TestNoticeCreateAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.seedUser(t, "ssar", domain.AuthorityAdmin)
	guest := f.seedUser(t, "love", domain.AuthorityGuest)

	t.Run("anonymous is rejected before validation", func(t *testing.T) {
		_, err := f.boards.Create(ctx, newSession(), domain.BoardNotice, 0, post("", ""))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("guest is rejected before validation", func(t *testing.T) {
		_, err := f.boards.Create(ctx, as(guest), domain.BoardNotice, 0, post("", ""))
		require.ErrorIs(t, err, ErrNotAdmin)
	})

	t.Run("admin gets validation errors", func(t *testing.T) {
		_, err := f.boards.Create(ctx, as(admin), domain.BoardNotice, 0, post("", "body"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "required", verr.Fields["title"])
	})

	page, err := f.boards.List(ctx, domain.BoardNotice, 0, 0)
	require.NoError(t, err)
	require.Zero(t, page.Total)

	t.Run("admin creates and paragraphs are stripped", func(t *testing.T) {
		id, err := f.boards.Create(ctx, as(admin), domain.BoardNotice, 0,
			post("hello", "<p>first</p><p>second <b>bold</b></p>"))
		require.NoError(t, err)

		d, err := f.boards.Detail(ctx, domain.BoardNotice, 0, id)
		require.NoError(t, err)
		require.Equal(t, "firstsecond <b>bold</b>", d.Entry.Content)
		require.Equal(t, admin.ID, d.Author.ID)
		require.Zero(t, d.Entry.AnimalID)
	})
}

func TestListOrderingAndPageBlock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	for i := 0; i < 13; i++ {
		_, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalCat, post(fmt.Sprintf("cat %d", i), "c"))
		require.NoError(t, err)
	}
	_, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalDog, post("dog", "c"))
	require.NoError(t, err)

	first, err := f.boards.List(ctx, domain.BoardQna, domain.AnimalCat, 0)
	require.NoError(t, err)
	require.Equal(t, int64(13), first.Total)
	require.Len(t, first.Items, 10)
	require.Equal(t, "cat 12", first.Items[0].Title)
	require.Equal(t, 1, first.StartBlock)
	require.Equal(t, 10, first.EndBlock)

	second, err := f.boards.List(ctx, domain.BoardQna, domain.AnimalCat, 1)
	require.NoError(t, err)
	require.Len(t, second.Items, 3)
	require.True(t, second.Last())

	far, err := f.boards.List(ctx, domain.BoardQna, domain.AnimalCat, 23)
	require.NoError(t, err)
	require.Empty(t, far.Items)
	require.Equal(t, 21, far.StartBlock)
	require.Equal(t, 30, far.EndBlock)

	for _, page := range []int{math.MaxInt, math.MaxInt/domain.PageSize + 1} {
		huge, err := f.boards.List(ctx, domain.BoardQna, domain.AnimalCat, page)
		require.NoError(t, err)
		require.Empty(t, huge.Items, "page %d", page)
		require.Equal(t, int64(13), huge.Total)
		require.Equal(t, domain.MaxPage, huge.Number)
		require.Positive(t, huge.StartBlock)
		require.Greater(t, huge.EndBlock, huge.StartBlock)
	}
}

func TestDetailIncrementsByOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	id, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalDog, post("t", "c"))
	require.NoError(t, err)

	for want := int64(1); want <= 3; want++ {
		d, err := f.boards.Detail(ctx, domain.BoardQna, domain.AnimalDog, id)
		require.NoError(t, err)
		require.Equal(t, want, d.Entry.Counter)
	}

	_, err = f.boards.Detail(ctx, domain.BoardQna, domain.AnimalDog, id+100)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, id+100, nf.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

// vanishingBoards counts increments and then loses the entry, as a
// concurrent delete between the two steps would.
type vanishingBoards struct {
	store.Boards
	increments int
}

func (b *vanishingBoards) IncrementCounter(ctx context.Context, kind domain.BoardKind, id int64) error {
	b.increments++
	return b.Boards.IncrementCounter(ctx, kind, id)
}

func (b *vanishingBoards) GetEntry(context.Context, domain.BoardKind, int64) (domain.BoardEntry, error) {
	return domain.BoardEntry{}, store.ErrNotFound
}

type vanishingStore struct {
	store.Store
	boards *vanishingBoards
}

func (s *vanishingStore) Boards() store.Boards { return s.boards }

func TestDetailIncrementSurvivesNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.seedUser(t, "ssar", domain.AuthorityAdmin)

	id, err := f.boards.Create(ctx, as(admin), domain.BoardNotice, 0, post("t", "c"))
	require.NoError(t, err)

	vs := &vanishingStore{Store: f.store, boards: &vanishingBoards{Boards: f.store.Boards()}}
	svc := &BoardService{Store: vs}

	_, err = svc.Detail(ctx, domain.BoardNotice, 0, id)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 1, vs.boards.increments)

	e, err := f.store.Boards().GetEntry(ctx, domain.BoardNotice, id)
	require.NoError(t, err)
	require.Equal(t, int64(1), e.Counter)
}

func TestAtomicViewCountRollsBackOnMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)
	f.boards.AtomicViewCount = true

	id, err := f.boards.Create(ctx, as(u), domain.BoardBoast, domain.AnimalCat, post("t", "c"))
	require.NoError(t, err)

	d, err := f.boards.Detail(ctx, domain.BoardBoast, domain.AnimalCat, id)
	require.NoError(t, err)
	require.Equal(t, int64(1), d.Entry.Counter)

	_, err = f.boards.Detail(ctx, domain.BoardBoast, domain.AnimalCat, id+1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateKeepsCounterAndChecksOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.seedUser(t, "love", domain.AuthorityGuest)
	other := f.seedUser(t, "cos", domain.AuthorityAdmin)

	id, err := f.boards.Create(ctx, as(owner), domain.BoardQna, domain.AnimalCat, post("before", "c"))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = f.boards.Detail(ctx, domain.BoardQna, domain.AnimalCat, id)
		require.NoError(t, err)
	}

	t.Run("validation runs before the session check", func(t *testing.T) {
		err := f.boards.Update(ctx, newSession(), domain.BoardQna, domain.AnimalCat, id, post("", "c"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("anonymous", func(t *testing.T) {
		err := f.boards.Update(ctx, newSession(), domain.BoardQna, domain.AnimalCat, id, post("x", "c"))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("missing entry", func(t *testing.T) {
		err := f.boards.Update(ctx, as(owner), domain.BoardQna, domain.AnimalCat, id+9, post("x", "c"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-owner, even an admin", func(t *testing.T) {
		err := f.boards.Update(ctx, as(other), domain.BoardQna, domain.AnimalCat, id, post("hijack", "c"))
		require.ErrorIs(t, err, ErrForbidden)
		err = f.boards.Delete(ctx, as(other), domain.BoardQna, id)
		require.ErrorIs(t, err, ErrForbidden)

		e, err := f.store.Boards().GetEntry(ctx, domain.BoardQna, id)
		require.NoError(t, err)
		require.Equal(t, "before", e.Title)
	})

	require.NoError(t, f.boards.Update(ctx, as(owner), domain.BoardQna, domain.AnimalCat, id, post("after", "<p>new</p>")))

	d, err := f.boards.Detail(ctx, domain.BoardQna, domain.AnimalCat, id)
	require.NoError(t, err)
	require.Equal(t, "after", d.Entry.Title)
	require.Equal(t, "new", d.Entry.Content)
	require.Equal(t, int64(3), d.Entry.Counter)
	require.Equal(t, owner.ID, d.Entry.UserID)
}

func TestEntryTextIsStoredAsSent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	// "cafe" with a combining acute accent, not the precomposed rune.
	content := "<p>cafe\u0301</p> \n"
	title := "  cafe\u0301  "

	id, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalCat, post(title, content))
	require.NoError(t, err)
	e, err := f.store.Boards().GetEntry(ctx, domain.BoardQna, id)
	require.NoError(t, err)
	require.Equal(t, title, e.Title)
	require.Equal(t, "cafe\u0301 \n", e.Content)

	require.NoError(t, f.boards.Update(ctx, as(u), domain.BoardQna, domain.AnimalCat, id, post(title, "x\u0301")))
	e, err = f.store.Boards().GetEntry(ctx, domain.BoardQna, id)
	require.NoError(t, err)
	require.Equal(t, "x\u0301", e.Content)
}

func TestUpdateMovesEntryToPathAnimal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	for _, kind := range []domain.BoardKind{domain.BoardQna, domain.BoardBoast} {
		id, err := f.boards.Create(ctx, as(u), kind, domain.AnimalCat, post("cat", "c"))
		require.NoError(t, err)

		require.NoError(t, f.boards.Update(ctx, as(u), kind, domain.AnimalDog, id, post("dog", "c")))

		e, err := f.store.Boards().GetEntry(ctx, kind, id)
		require.NoError(t, err)
		require.Equal(t, domain.AnimalDog, e.AnimalID, "kind %s", kind)
		require.Equal(t, "dog", e.Title)

		cats, err := f.boards.List(ctx, kind, domain.AnimalCat, 0)
		require.NoError(t, err)
		require.Zero(t, cats.Total)
		dogs, err := f.boards.List(ctx, kind, domain.AnimalDog, 0)
		require.NoError(t, err)
		require.Equal(t, int64(1), dogs.Total)
	}
}

func TestQnaDeletePurgesActorComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)
	other := f.seedUser(t, "cos", domain.AuthorityGuest)

	mine, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalCat, post("mine", "c"))
	require.NoError(t, err)
	theirs, err := f.boards.Create(ctx, as(other), domain.BoardQna, domain.AnimalDog, post("theirs", "c"))
	require.NoError(t, err)

	comment := func(sess SessionContext, animal int, qna int64, text string) {
		_, err := f.boards.CreateComment(ctx, sess, animal, qna, petsdk.CommentSaveRequest{Content: text})
		require.NoError(t, err)
	}
	comment(as(u), domain.AnimalDog, theirs, "u on theirs")
	comment(as(other), domain.AnimalDog, theirs, "other on theirs")
	comment(as(other), domain.AnimalCat, mine, "other on mine")

	require.NoError(t, f.boards.Delete(ctx, as(u), domain.BoardQna, mine))

	_, err = f.store.Boards().GetEntry(ctx, domain.BoardQna, mine)
	require.ErrorIs(t, err, store.ErrNotFound)

	left, err := f.store.Comments().ListCommentsByQna(ctx, theirs)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, other.ID, left[0].UserID)
}

func TestNoticeDeleteKeepsComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.seedUser(t, "ssar", domain.AuthorityAdmin)

	qna, err := f.boards.Create(ctx, as(admin), domain.BoardQna, domain.AnimalCat, post("q", "c"))
	require.NoError(t, err)
	_, err = f.boards.CreateComment(ctx, as(admin), domain.AnimalCat, qna, petsdk.CommentSaveRequest{Content: "hi"})
	require.NoError(t, err)

	notice, err := f.boards.Create(ctx, as(admin), domain.BoardNotice, 0, post("n", "c"))
	require.NoError(t, err)
	require.NoError(t, f.boards.Delete(ctx, as(admin), domain.BoardNotice, notice))

	left, err := f.store.Comments().ListCommentsByQna(ctx, qna)
	require.NoError(t, err)
	require.Len(t, left, 1)
}

// failingTxStore fails every transaction, as a broken connection would.
type failingTxStore struct {
	store.Store
}

func (s failingTxStore) WithTx(context.Context, func(store.Tx) error) error {
	return errors.New("database is locked")
}

func TestDeleteFailureIsReportedAsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	id, err := f.boards.Create(ctx, as(u), domain.BoardBoast, domain.AnimalDog, post("t", "c"))
	require.NoError(t, err)

	svc := &BoardService{Store: failingTxStore{Store: f.store}}
	err = svc.Delete(ctx, as(u), domain.BoardBoast, id)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, id, nf.ID)
	require.Contains(t, err.Error(), "could not delete, id not found")
	require.NotContains(t, err.Error(), "locked")
}

func TestCommentCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	_, err := f.boards.CreateComment(ctx, newSession(), domain.AnimalCat, 1, petsdk.CommentSaveRequest{Content: "x"})
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.boards.CreateComment(ctx, as(u), domain.AnimalCat, 77, petsdk.CommentSaveRequest{Content: "x"})
	require.ErrorIs(t, err, ErrNotFound)

	qna, err := f.boards.Create(ctx, as(u), domain.BoardQna, domain.AnimalCat, post("q", "c"))
	require.NoError(t, err)

	_, err = f.boards.CreateComment(ctx, as(u), domain.AnimalCat, qna, petsdk.CommentSaveRequest{Content: "  "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = f.boards.CreateComment(ctx, as(u), domain.AnimalCat, qna, petsdk.CommentSaveRequest{Content: "nice"})
	require.NoError(t, err)

	d, err := f.boards.Detail(ctx, domain.BoardQna, domain.AnimalCat, qna)
	require.NoError(t, err)
	require.Len(t, d.Comments, 1)
	require.Equal(t, "nice", d.Comments[0].Comment.Content)
	require.Equal(t, u.ID, d.Comments[0].Author.ID)
	require.Equal(t, int64(1), d.Entry.Counter)
}

func TestUnknownAnimalChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seedUser(t, "love", domain.AuthorityGuest)

	_, err := f.boards.List(ctx, domain.BoardQna, 3, 0)
	require.ErrorIs(t, err, ErrUnknownAnimal)

	_, err = f.boards.Create(ctx, as(u), domain.BoardQna, 9, post("t", "c"))
	require.ErrorIs(t, err, ErrUnknownAnimal)

	_, err = f.boards.Detail(ctx, domain.BoardBoast, 0, 1)
	require.ErrorIs(t, err, ErrUnknownAnimal)

	page, err := f.boards.List(ctx, domain.BoardQna, domain.AnimalCat, 0)
	require.NoError(t, err)
	require.Zero(t, page.Total)
}
