package service

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
)

const (
	DefaultRankSize = 3
	MaxRankSize     = 10
)

type RankingService struct {
	Store store.Store
}

type AnimalRanking struct {
	Animal  domain.Animal
	Entries []domain.BoardEntry
}

type MainRanking struct {
	Overall  []domain.BoardEntry
	ByAnimal []AnimalRanking
}

func clampRank(n int) int {
	switch {
	case n <= 0:
		return DefaultRankSize
	case n > MaxRankSize:
		return MaxRankSize
	}
	return n
}

// Top returns the n most viewed entries. animalID zero ranks across every
// partition.
func (s *RankingService) Top(ctx context.Context, kind domain.BoardKind, animalID, n int) ([]domain.BoardEntry, error) {
	if animalID != 0 && !domain.KnownAnimal(animalID) {
		return nil, ErrUnknownAnimal
	}
	return s.Store.Boards().TopEntries(ctx, store.BoardFilter{Kind: kind, AnimalID: animalID}, clampRank(n))
}

// Main ranks boasts overall and per animal.
func (s *RankingService) Main(ctx context.Context) (MainRanking, error) {
	overall, err := s.Top(ctx, domain.BoardBoast, 0, DefaultRankSize)
	if err != nil {
		return MainRanking{}, err
	}

	m := MainRanking{Overall: overall}
	for _, a := range domain.Animals {
		entries, err := s.Top(ctx, domain.BoardBoast, a.ID, DefaultRankSize)
		if err != nil {
			return MainRanking{}, err
		}
		m.ByAnimal = append(m.ByAnimal, AnimalRanking{Animal: a, Entries: entries})
	}
	return m, nil
}
