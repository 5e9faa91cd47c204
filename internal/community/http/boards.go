package http

import (
	"fmt"
	"net/http"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/session"
	"github.com/petproject/community/pkg/httpx"
	"github.com/petproject/community/pkg/petsdk"
)

// BoardHandler serves the notice board and the per animal qna and boast
// boards.
type BoardHandler struct {
	BoardService *service.BoardService
}

// animalBoard resolves the {board} segment of an animal scoped route.
func animalBoard(r *http.Request) (domain.BoardKind, bool) {
	switch k := domain.BoardKind(r.PathValue("board")); k {
	case domain.BoardQna, domain.BoardBoast:
		return k, true
	}
	return "", false
}

// listPath is where a successful create sends the browser.
func listPath(kind domain.BoardKind, animalID int) string {
	if kind == domain.BoardNotice {
		return "/notice?page=0"
	}
	return fmt.Sprintf("/%d/%s?page=0", animalID, kind)
}

func boardForm(r *http.Request) petsdk.BoardSaveRequest {
	return petsdk.BoardSaveRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}
}

func (h *BoardHandler) list(w http.ResponseWriter, r *http.Request, kind domain.BoardKind, animalID int) {
	page, err := h.BoardService.List(r.Context(), kind, animalID, queryInt(r, "page", 0))
	if err != nil {
		writeError(w, r, err)
		return
	}
	authors := h.BoardService.Authors(r.Context(), service.EntryUserIDs(page.Items))
	writeOK(w, "ok", toPage(page, authors))
}

func (h *BoardHandler) detail(w http.ResponseWriter, r *http.Request, kind domain.BoardKind, animalID int) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, "entry not found")
		return
	}
	d, err := h.BoardService.Detail(r.Context(), kind, animalID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "ok", toDetail(d))
}

func (h *BoardHandler) create(w http.ResponseWriter, r *http.Request, kind domain.BoardKind, animalID int) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteScriptBack(w, "invalid form data")
		return
	}
	sess := session.FromContext(r.Context())
	if _, err := h.BoardService.Create(r.Context(), sess, kind, animalID, boardForm(r)); err != nil {
		writeScriptError(w, r, err)
		return
	}
	httpx.WriteScriptHref(w, listPath(kind, animalID), "")
}

func (h *BoardHandler) update(w http.ResponseWriter, r *http.Request, kind domain.BoardKind, animalID int) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, "entry not found")
		return
	}
	var req petsdk.BoardSaveRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := session.FromContext(r.Context())
	if err := h.BoardService.Update(r.Context(), sess, kind, animalID, id, req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "update complete", nil)
}

func (h *BoardHandler) remove(w http.ResponseWriter, r *http.Request, kind domain.BoardKind) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, "entry not found")
		return
	}
	sess := session.FromContext(r.Context())
	if err := h.BoardService.Delete(r.Context(), sess, kind, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "delete complete", nil)
}

// HandleNoticeList godoc
//
//	@Summary		List notices
//	@Description	One page of notices, newest first. Pages are zero based.
//	@Tags			Notice
//	@Produce		json
//	@Param			page	query		int								false	"zero based page"
//	@Success		200		{object}	petsdk.Envelope[petsdk.Page]	"page"
//	@Router			/notice [get].
func (h *BoardHandler) HandleNoticeList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.BoardNotice, 0)
}

// HandleNoticeDetail godoc
//
//	@Summary		Notice detail
//	@Description	Increments the view counter, then loads the notice.
//	@Tags			Notice
//	@Produce		json
//	@Param			id	path		int										true	"notice id"
//	@Success		200	{object}	petsdk.Envelope[petsdk.EntryDetail]		"entry"
//	@Failure		404	{object}	petsdk.Envelope[any]					"not found"
//	@Router			/notice/{id} [get].
func (h *BoardHandler) HandleNoticeDetail(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, domain.BoardNotice, 0)
}

// HandleNoticeCreate godoc
//
//	@Summary		Create notice
//	@Description	Admin only. Answers with a script redirect page.
//	@Tags			Notice
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			title	formData	string	true	"title"
//	@Param			content	formData	string	true	"content"
//	@Success		200		{string}	string	"script page"
//	@Router			/notice [post].
func (h *BoardHandler) HandleNoticeCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.BoardNotice, 0)
}

// HandleNoticeUpdate godoc
//
//	@Summary		Update notice
//	@Tags			Notice
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"notice id"
//	@Param			body	body		petsdk.BoardSaveRequest	true	"title and content"
//	@Success		200		{object}	petsdk.Envelope[any]	"updated"
//	@Failure		400		{object}	petsdk.Envelope[any]	"invalid fields"
//	@Failure		401		{object}	petsdk.Envelope[any]	"not logged in"
//	@Failure		403		{object}	petsdk.Envelope[any]	"not the owner"
//	@Failure		404		{object}	petsdk.Envelope[any]	"not found"
//	@Router			/notice/{id} [put].
func (h *BoardHandler) HandleNoticeUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, domain.BoardNotice, 0)
}

// HandleDelete godoc
//
//	@Summary		Delete entry
//	@Description	Owner only. Deleting a qna entry also removes every comment written by the caller.
//	@Tags			Boards
//	@Produce		json
//	@Param			board	path		string					true	"notice, qna or boast"
//	@Param			id		path		int						true	"entry id"
//	@Success		200		{object}	petsdk.Envelope[any]	"deleted"
//	@Failure		401		{object}	petsdk.Envelope[any]	"not logged in"
//	@Failure		403		{object}	petsdk.Envelope[any]	"not the owner"
//	@Failure		404		{object}	petsdk.Envelope[any]	"not found"
//	@Router			/{board}/{id} [delete].
func (h *BoardHandler) HandleDelete(kind domain.BoardKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.remove(w, r, kind)
	}
}

// animalRoute resolves {animalId} and {board} before calling fn. An
// unknown board is a 404; an unknown animal goes home.
func (h *BoardHandler) animalRoute(
	fn func(http.ResponseWriter, *http.Request, domain.BoardKind, int),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := animalBoard(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		animalID, err := pathAnimal(r)
		if err != nil {
			http.Redirect(w, r, homePath, http.StatusFound)
			return
		}
		fn(w, r, kind, animalID)
	}
}

// HandleAnimalList godoc
//
//	@Summary		List qna or boast entries
//	@Tags			Boards
//	@Produce		json
//	@Param			animalId	path		int								true	"1 cat, 2 dog"
//	@Param			board		path		string							true	"qna or boast"
//	@Param			page		query		int								false	"zero based page"
//	@Success		200			{object}	petsdk.Envelope[petsdk.Page]	"page"
//	@Failure		302			{string}	string							"unknown animal, redirect to /main"
//	@Router			/{animalId}/{board} [get].
func (h *BoardHandler) HandleAnimalList() http.HandlerFunc { return h.animalRoute(h.list) }

// HandleAnimalDetail godoc
//
//	@Summary		Qna or boast detail
//	@Description	Increments the view counter, then loads the entry with its comments.
//	@Tags			Boards
//	@Produce		json
//	@Param			animalId	path		int										true	"1 cat, 2 dog"
//	@Param			board		path		string									true	"qna or boast"
//	@Param			id			path		int										true	"entry id"
//	@Success		200			{object}	petsdk.Envelope[petsdk.EntryDetail]		"entry"
//	@Failure		404			{object}	petsdk.Envelope[any]					"not found"
//	@Router			/{animalId}/{board}/{id} [get].
func (h *BoardHandler) HandleAnimalDetail() http.HandlerFunc { return h.animalRoute(h.detail) }

// HandleAnimalCreate godoc
//
//	@Summary		Create qna or boast entry
//	@Description	Any logged in user. Answers with a script redirect page.
//	@Tags			Boards
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			animalId	path		int		true	"1 cat, 2 dog"
//	@Param			board		path		string	true	"qna or boast"
//	@Param			title		formData	string	true	"title"
//	@Param			content		formData	string	true	"content"
//	@Success		200			{string}	string	"script page"
//	@Router			/{animalId}/{board} [post].
func (h *BoardHandler) HandleAnimalCreate() http.HandlerFunc { return h.animalRoute(h.create) }

// HandleAnimalUpdate godoc
//
//	@Summary		Update qna or boast entry
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Param			animalId	path		int						true	"1 cat, 2 dog"
//	@Param			board		path		string					true	"qna or boast"
//	@Param			id			path		int						true	"entry id"
//	@Param			body		body		petsdk.BoardSaveRequest	true	"title and content"
//	@Success		200			{object}	petsdk.Envelope[any]	"updated"
//	@Failure		403			{object}	petsdk.Envelope[any]	"not the owner"
//	@Router			/{animalId}/{board}/{id} [put].
func (h *BoardHandler) HandleAnimalUpdate() http.HandlerFunc { return h.animalRoute(h.update) }

// HandleCommentCreate godoc
//
//	@Summary		Comment on a qna entry
//	@Tags			Qna
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			animalId	path		int		true	"1 cat, 2 dog"
//	@Param			id			path		int		true	"qna id"
//	@Param			content		formData	string	true	"comment"
//	@Success		200			{string}	string	"script page"
//	@Router			/{animalId}/qna/{id}/comment [post].
func (h *BoardHandler) HandleCommentCreate(w http.ResponseWriter, r *http.Request) {
	animalID, err := pathAnimal(r)
	if err != nil {
		http.Redirect(w, r, homePath, http.StatusFound)
		return
	}
	qnaID, ok := pathID(r)
	if !ok {
		httpx.WriteScriptBack(w, "entry not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteScriptBack(w, "invalid form data")
		return
	}

	sess := session.FromContext(r.Context())
	req := petsdk.CommentSaveRequest{Content: r.FormValue("content")}
	if _, err := h.BoardService.CreateComment(r.Context(), sess, animalID, qnaID, req); err != nil {
		writeScriptError(w, r, err)
		return
	}
	httpx.WriteScriptHref(w, fmt.Sprintf("/%d/qna/%d", animalID, qnaID), "")
}
