package sqlite

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/internal/community/store/drivers/sqlite/gen"
)

type boardsRepo struct {
	q *gen.Queries
}

func (r *boardsRepo) CreateEntry(ctx context.Context, e domain.BoardEntry) (int64, error) {
	return r.q.CreateBoardEntry(ctx, gen.CreateBoardEntryParams{
		Kind:      string(e.Kind),
		AnimalID:  int64(e.AnimalID),
		Title:     e.Title,
		Content:   e.Content,
		UserID:    e.UserID,
		CreatedAt: utc(e.CreatedAt),
	})
}

func (r *boardsRepo) GetEntry(ctx context.Context, kind domain.BoardKind, id int64) (domain.BoardEntry, error) {
	row, err := r.q.GetBoardEntry(ctx, gen.GetBoardEntryParams{Kind: string(kind), ID: id})
	if err != nil {
		return domain.BoardEntry{}, mapNotFound(err)
	}
	return mapEntry(row), nil
}

func (r *boardsRepo) ListEntries(
	ctx context.Context,
	f store.BoardFilter,
	page, size int,
) ([]domain.BoardEntry, int64, error) {
	total, err := r.q.CountBoardEntries(ctx, gen.CountBoardEntriesParams{
		Kind:     string(f.Kind),
		AnimalID: int64(f.AnimalID),
	})
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.q.ListBoardEntries(ctx, gen.ListBoardEntriesParams{
		Kind:     string(f.Kind),
		AnimalID: int64(f.AnimalID),
		Limit:    int64(size),
		Offset:   int64(page) * int64(size),
	})
	if err != nil {
		return nil, 0, err
	}
	return mapEntries(rows), total, nil
}

func (r *boardsRepo) TopEntries(ctx context.Context, f store.BoardFilter, n int) ([]domain.BoardEntry, error) {
	rows, err := r.q.TopBoardEntries(ctx, gen.TopBoardEntriesParams{
		Kind:     string(f.Kind),
		AnimalID: int64(f.AnimalID),
		Limit:    int64(n),
	})
	if err != nil {
		return nil, err
	}
	return mapEntries(rows), nil
}

func (r *boardsRepo) ReplaceEntry(ctx context.Context, e domain.BoardEntry) error {
	return expectOne(r.q.ReplaceBoardEntry(ctx, gen.ReplaceBoardEntryParams{
		AnimalID:  int64(e.AnimalID),
		Title:     e.Title,
		Content:   e.Content,
		UserID:    e.UserID,
		Counter:   e.Counter,
		CreatedAt: utc(e.CreatedAt),
		Kind:      string(e.Kind),
		ID:        e.ID,
	}))
}

func (r *boardsRepo) DeleteEntry(ctx context.Context, kind domain.BoardKind, id int64) error {
	return expectOne(r.q.DeleteBoardEntry(ctx, gen.DeleteBoardEntryParams{Kind: string(kind), ID: id}))
}

func (r *boardsRepo) IncrementCounter(ctx context.Context, kind domain.BoardKind, id int64) error {
	return r.q.IncrementBoardCounter(ctx, gen.IncrementBoardCounterParams{Kind: string(kind), ID: id})
}
