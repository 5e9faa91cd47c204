package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/otelx"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/petproject/community/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BoardService runs the notice, qna and boast boards.
type BoardService struct {
	Store store.Store

	// AtomicViewCount runs Detail's increment and load in one transaction.
	// Off by default: the increment is committed on its own and survives a
	// failed load.
	AtomicViewCount bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// EntryDetail is a loaded entry with its author and, for qna, comments.
type EntryDetail struct {
	Entry    domain.BoardEntry
	Author   *domain.User
	Comments []CommentDetail
}

type CommentDetail struct {
	Comment domain.Comment
	Author  *domain.User
}

func (s *BoardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *BoardService) span(ctx context.Context, op string, kind domain.BoardKind, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("board.kind", string(kind)))
	return otelx.Tracer().Start(ctx, "board."+op, trace.WithAttributes(attrs...))
}

// checkAnimal rejects unknown partitions for per-animal boards.
func checkAnimal(kind domain.BoardKind, animalID int) error {
	if kind == domain.BoardNotice {
		return nil
	}
	if !domain.KnownAnimal(animalID) {
		return ErrUnknownAnimal
	}
	return nil
}

// stripParagraphs removes the literal <p> and </p> wrappers an editor adds.
// Other markup is left as is.
func stripParagraphs(s string) string {
	return strings.NewReplacer("<p>", "", "</p>", "").Replace(s)
}

// List returns one page ordered by id descending. animalID is ignored for
// notices. Pages past domain.MaxPage are read as MaxPage, which is empty.
func (s *BoardService) List(ctx context.Context, kind domain.BoardKind, animalID, page int) (domain.Page[domain.BoardEntry], error) {
	ctx, span := s.span(ctx, "List", kind, attribute.Int("board.page", page))
	defer span.End()

	if err := checkAnimal(kind, animalID); err != nil {
		return domain.Page[domain.BoardEntry]{}, err
	}
	page = domain.ClampPage(page)

	f := store.BoardFilter{Kind: kind, AnimalID: animalID}
	if kind == domain.BoardNotice {
		f.AnimalID = 0
	}

	items, total, err := s.Store.Boards().ListEntries(ctx, f, page, domain.PageSize)
	if err != nil {
		otelx.RecordError(span, err)
		slogx.FromContext(ctx).Error("failed to list entries", slog.Any("error", err))
		return domain.Page[domain.BoardEntry]{}, err
	}
	return domain.NewPage(items, page, domain.PageSize, total), nil
}

// Detail bumps the view counter and then loads the entry. The increment is
// a separate step: it is kept even when the load reports NotFound.
func (s *BoardService) Detail(ctx context.Context, kind domain.BoardKind, animalID int, id int64) (EntryDetail, error) {
	ctx, span := s.span(ctx, "Detail", kind, attribute.Int64("board.id", id))
	defer span.End()

	if err := checkAnimal(kind, animalID); err != nil {
		return EntryDetail{}, err
	}

	var entry domain.BoardEntry
	load := func(boards store.Boards) error {
		if err := boards.IncrementCounter(ctx, kind, id); err != nil {
			return err
		}
		var err error
		entry, err = boards.GetEntry(ctx, kind, id)
		return err
	}

	var err error
	if s.AtomicViewCount {
		err = s.Store.WithTx(ctx, func(tx store.Tx) error { return load(tx.Boards()) })
	} else {
		err = load(s.Store.Boards())
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return EntryDetail{}, entryNotFound(id)
		}
		otelx.RecordError(span, err)
		return EntryDetail{}, err
	}

	detail := EntryDetail{Entry: entry, Author: s.lookupUser(ctx, entry.UserID)}
	if kind == domain.BoardQna {
		comments, err := s.Store.Comments().ListCommentsByQna(ctx, id)
		if err != nil {
			return EntryDetail{}, err
		}
		authors := s.Authors(ctx, commentUserIDs(comments))
		for _, c := range comments {
			cd := CommentDetail{Comment: c}
			if u, ok := authors[c.UserID]; ok {
				cd.Author = &u
			}
			detail.Comments = append(detail.Comments, cd)
		}
	}
	return detail, nil
}

func commentUserIDs(cs []domain.Comment) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.UserID
	}
	return ids
}

// EntryUserIDs lists the owners of entries, for Authors.
func EntryUserIDs(es []domain.BoardEntry) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.UserID
	}
	return ids
}

func (s *BoardService) lookupUser(ctx context.Context, id string) *domain.User {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return nil
	}
	return &u
}

// Authors resolves user ids to users. Ids that fail to resolve are left out.
func (s *BoardService) Authors(ctx context.Context, ids []string) map[string]domain.User {
	out := make(map[string]domain.User, len(ids))
	for _, id := range ids {
		if _, seen := out[id]; seen {
			continue
		}
		if u := s.lookupUser(ctx, id); u != nil {
			out[id] = *u
		}
	}
	return out
}

// Create adds an entry authored by the session user. Notices additionally
// require admin authority. Checks run in order: login, authority, fields.
func (s *BoardService) Create(
	ctx context.Context,
	sess SessionContext,
	kind domain.BoardKind,
	animalID int,
	req petsdk.BoardSaveRequest,
) (int64, error) {
	ctx, span := s.span(ctx, "Create", kind)
	defer span.End()
	log := slogx.FromContext(ctx)

	if err := checkAnimal(kind, animalID); err != nil {
		return 0, err
	}

	actor, err := requireLogin(sess)
	if err != nil {
		return 0, err
	}
	if kind == domain.BoardNotice && !actor.IsAdmin() {
		log.Warn("non-admin attempted to create notice", slog.String("user_id", actor.ID))
		return 0, ErrNotAdmin
	}

	if err := validation(req.Validate()); err != nil {
		return 0, err
	}

	entry := domain.BoardEntry{
		Kind:      kind,
		Title:     req.Title,
		Content:   stripParagraphs(req.Content),
		UserID:    actor.ID,
		CreatedAt: s.now(),
	}
	if kind != domain.BoardNotice {
		entry.AnimalID = animalID
	}

	id, err := s.Store.Boards().CreateEntry(ctx, entry)
	if err != nil {
		otelx.RecordError(span, err)
		log.Error("failed to create entry", slog.Any("error", err))
		return 0, err
	}

	log.Info("entry created",
		slog.String("kind", string(kind)),
		slog.Int64("id", id),
		slog.String("user_id", actor.ID),
	)
	return id, nil
}

// loadOwned fetches the entry and checks that actor owns it.
func (s *BoardService) loadOwned(ctx context.Context, actor domain.User, kind domain.BoardKind, id int64) (domain.BoardEntry, error) {
	existing, err := s.Store.Boards().GetEntry(ctx, kind, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.BoardEntry{}, entryNotFound(id)
		}
		return domain.BoardEntry{}, err
	}
	if existing.UserID != actor.ID {
		slogx.FromContext(ctx).Warn("entry access by non-owner",
			slog.String("kind", string(kind)),
			slog.Int64("id", id),
			slog.String("user_id", actor.ID),
		)
		return domain.BoardEntry{}, ErrForbidden
	}
	return existing, nil
}

// Update replaces an owned entry. Qna and boast entries move to animalID.
// The view counter is carried over and the timestamp reset to now. Fields
// are checked before the session.
func (s *BoardService) Update(
	ctx context.Context,
	sess SessionContext,
	kind domain.BoardKind,
	animalID int,
	id int64,
	req petsdk.BoardSaveRequest,
) error {
	ctx, span := s.span(ctx, "Update", kind, attribute.Int64("board.id", id))
	defer span.End()

	if err := checkAnimal(kind, animalID); err != nil {
		return err
	}

	if err := validation(req.Validate()); err != nil {
		return err
	}

	actor, err := requireLogin(sess)
	if err != nil {
		return err
	}
	existing, err := s.loadOwned(ctx, actor, kind, id)
	if err != nil {
		return err
	}

	updated := existing
	if kind != domain.BoardNotice {
		updated.AnimalID = animalID
	}
	updated.Title = req.Title
	updated.Content = stripParagraphs(req.Content)
	updated.UserID = actor.ID
	updated.CreatedAt = s.now()

	if err := s.Store.Boards().ReplaceEntry(ctx, updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return entryNotFound(id)
		}
		otelx.RecordError(span, err)
		return err
	}

	slogx.FromContext(ctx).Info("entry updated", slog.String("kind", string(kind)), slog.Int64("id", id))
	return nil
}

// Delete removes an owned entry. Deleting a qna also removes every comment
// the actor ever wrote, on any qna. Any failure while removing is reported
// as NotFound for id; the cause is only logged.
func (s *BoardService) Delete(ctx context.Context, sess SessionContext, kind domain.BoardKind, id int64) error {
	ctx, span := s.span(ctx, "Delete", kind, attribute.Int64("board.id", id))
	defer span.End()
	log := slogx.FromContext(ctx)

	actor, err := requireLogin(sess)
	if err != nil {
		return err
	}
	if _, err := s.loadOwned(ctx, actor, kind, id); err != nil {
		return err
	}

	var purged int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if kind == domain.BoardQna {
			n, err := tx.Comments().DeleteCommentsByUser(ctx, actor.ID)
			if err != nil {
				return err
			}
			purged = n
		}
		return tx.Boards().DeleteEntry(ctx, kind, id)
	})
	if err != nil {
		otelx.RecordError(span, err)
		log.Warn("delete failed", slog.Int64("id", id), slog.Any("error", err))
		return deleteNotFound(id)
	}

	log.Info("entry deleted",
		slog.String("kind", string(kind)),
		slog.Int64("id", id),
		slog.Int64("comments_purged", purged),
	)
	return nil
}

// CreateComment adds a comment by the session user to qna entry qnaID.
func (s *BoardService) CreateComment(
	ctx context.Context,
	sess SessionContext,
	animalID int,
	qnaID int64,
	req petsdk.CommentSaveRequest,
) (int64, error) {
	ctx, span := s.span(ctx, "CreateComment", domain.BoardQna, attribute.Int64("board.id", qnaID))
	defer span.End()

	if err := checkAnimal(domain.BoardQna, animalID); err != nil {
		return 0, err
	}

	actor, err := requireLogin(sess)
	if err != nil {
		return 0, err
	}

	req.Content = strings.TrimSpace(req.Content)
	if err := validation(req.Validate()); err != nil {
		return 0, err
	}

	if _, err := s.Store.Boards().GetEntry(ctx, domain.BoardQna, qnaID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, entryNotFound(qnaID)
		}
		return 0, err
	}

	id, err := s.Store.Comments().CreateComment(ctx, domain.Comment{
		QnaID:   qnaID,
		UserID:  actor.ID,
		Content: req.Content,
	})
	if err != nil {
		otelx.RecordError(span, err)
		return 0, err
	}

	slogx.FromContext(ctx).Info("comment created", slog.Int64("qna_id", qnaID), slog.Int64("id", id))
	return id, nil
}
