package http

import (
	"net/http"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/pkg/petsdk"
)

type RankingHandler struct {
	RankingService *service.RankingService
	BoardService   *service.BoardService
}

// HandleMain godoc
//
//	@Summary		Landing page ranking
//	@Description	Top three boasts overall and per animal, by view count.
//	@Tags			Ranking
//	@Produce		json
//	@Success		200	{object}	petsdk.Envelope[petsdk.Main]	"ranking"
//	@Router			/main [get].
func (h *RankingHandler) HandleMain(w http.ResponseWriter, r *http.Request) {
	m, err := h.RankingService.Main(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids := service.EntryUserIDs(m.Overall)
	for _, a := range m.ByAnimal {
		ids = append(ids, service.EntryUserIDs(a.Entries)...)
	}
	authors := h.BoardService.Authors(r.Context(), ids)

	out := petsdk.Main{
		Overall:  toEntries(m.Overall, authors),
		ByAnimal: make([]petsdk.AnimalRank, 0, len(m.ByAnimal)),
	}
	for _, a := range m.ByAnimal {
		out.ByAnimal = append(out.ByAnimal, petsdk.AnimalRank{
			AnimalID: a.Animal.ID,
			Name:     a.Animal.Name,
			Entries:  toEntries(a.Entries, authors),
		})
	}
	writeOK(w, "ok", out)
}

// HandleBoastRank godoc
//
//	@Summary		Most viewed boasts for one animal
//	@Tags			Ranking
//	@Produce		json
//	@Param			animalId	path		int								true	"1 cat, 2 dog"
//	@Param			n			query		int								false	"how many, default 3, max 10"
//	@Success		200			{object}	petsdk.Envelope[[]petsdk.Entry]	"entries"
//	@Router			/{animalId}/boast/rank [get].
func (h *RankingHandler) HandleBoastRank(w http.ResponseWriter, r *http.Request) {
	animalID, err := pathAnimal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	entries, err := h.RankingService.Top(r.Context(), domain.BoardBoast, animalID, queryInt(r, "n", service.DefaultRankSize))
	if err != nil {
		writeError(w, r, err)
		return
	}
	authors := h.BoardService.Authors(r.Context(), service.EntryUserIDs(entries))
	writeOK(w, "ok", toEntries(entries, authors))
}
