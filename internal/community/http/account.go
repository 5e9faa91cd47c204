package http

import (
	"errors"
	"net/http"

	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/session"
	"github.com/petproject/community/pkg/httpx"
	"github.com/petproject/community/pkg/petsdk"
)

// AccountHandler serves login, registration, recovery and profile routes.
type AccountHandler struct {
	UserService *service.UserService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Checks the credentials and stores the user in the session. Answers with a script redirect page.
//	@Tags			Account
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			username	formData	string	true	"username"
//	@Param			password	formData	string	true	"password"
//	@Success		200			{string}	string	"script page"
//	@Router			/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteScriptBack(w, "invalid form data")
		return
	}

	req := petsdk.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if _, err := h.UserService.Login(r.Context(), session.FromContext(r.Context()), req); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteScriptBack(w, err.Error())
			return
		}
		writeScriptError(w, r, err)
		return
	}
	httpx.WriteScriptHref(w, "/", "login complete")
}

// HandleJoin godoc
//
//	@Summary		Register
//	@Description	Requires a key previously mailed by /auth/email. Answers with a script redirect page.
//	@Tags			Account
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			username	formData	string	true	"username"
//	@Param			password	formData	string	true	"password"
//	@Param			nickname	formData	string	true	"nickname"
//	@Param			phone		formData	string	true	"phone"
//	@Param			email		formData	string	true	"email"
//	@Param			birth		formData	string	true	"YYYY-MM-DD"
//	@Param			authKey		formData	string	true	"mailed verification key"
//	@Success		200			{string}	string	"script page"
//	@Router			/join [post].
func (h *AccountHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteScriptBack(w, "invalid form data")
		return
	}

	req := petsdk.JoinRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Nickname: r.FormValue("nickname"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Birth:    r.FormValue("birth"),
		AuthKey:  r.FormValue("authKey"),
	}
	if _, err := h.UserService.Join(r.Context(), req); err != nil {
		httpx.WriteScriptBack(w, messageFor(r.Context(), err, statusFor(err)))
		return
	}
	httpx.WriteScriptHref(w, loginFormPath, "join complete")
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Discards the whole session and redirects to /.
//	@Tags			Account
//	@Success		302
//	@Router			/logout [get].
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Logout(r.Context(), session.FromContext(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	petsdk.Envelope[petsdk.User]	"user"
//	@Failure		401	{object}	petsdk.Envelope[any]			"not logged in"
//	@Router			/api/user/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Me(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "ok", toUser(u))
}

// HandleFindUsername godoc
//
//	@Summary		Recover username
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		petsdk.IDFindRequest		true	"nickname, birth, email"
//	@Success		200		{object}	petsdk.Envelope[string]		"username"
//	@Failure		404		{object}	petsdk.Envelope[any]		"no match"
//	@Router			/id/modal [post].
func (h *AccountHandler) HandleFindUsername(w http.ResponseWriter, r *http.Request) {
	var req petsdk.IDFindRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	username, err := h.UserService.FindUsername(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "ok", username)
}

// HandleStartPasswordReset godoc
//
//	@Summary		Start password reset
//	@Description	Verifies the identity fields and remembers the user in the caller's session.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		petsdk.PwFindRequest	true	"username, nickname, birth, email"
//	@Success		200		{object}	petsdk.Envelope[any]	"identity confirmed"
//	@Failure		404		{object}	petsdk.Envelope[any]	"no match"
//	@Router			/pw/modal [post].
func (h *AccountHandler) HandleStartPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req petsdk.PwFindRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.UserService.StartPasswordReset(r.Context(), session.FromContext(r.Context()), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "identity confirmed", nil)
}

// HandleChangePassword godoc
//
//	@Summary		Finish password reset
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		petsdk.PwChangeRequest	true	"new password"
//	@Success		200		{object}	petsdk.Envelope[any]	"changed"
//	@Failure		401		{object}	petsdk.Envelope[any]	"no reset in progress"
//	@Router			/pw/change [put].
func (h *AccountHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req petsdk.PwChangeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.UserService.ChangePassword(r.Context(), session.FromContext(r.Context()), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "password changed", nil)
}

// HandleUpdateProfile godoc
//
//	@Summary		Update own profile
//	@Description	The key must be the latest one mailed to the new email.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"session user id"
//	@Param			body	body		petsdk.UserUpdateRequest	true	"profile"
//	@Success		200		{object}	petsdk.Envelope[petsdk.User]	"updated user"
//	@Failure		400		{object}	petsdk.Envelope[any]		"invalid fields or key"
//	@Failure		403		{object}	petsdk.Envelope[any]		"not your profile"
//	@Failure		409		{object}	petsdk.Envelope[any]		"email or phone taken"
//	@Router			/api/user/{id} [put].
func (h *AccountHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req petsdk.UserUpdateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.UserService.UpdateProfile(r.Context(), session.FromContext(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "profile updated", toUser(u))
}

// HandlePromoteAdmin godoc
//
//	@Summary		Promote a user to admin
//	@Tags			Account
//	@Produce		json
//	@Param			id	path		string					true	"user id"
//	@Success		200	{object}	petsdk.Envelope[any]	"promoted"
//	@Failure		403	{object}	petsdk.Envelope[any]	"admin only"
//	@Router			/user/admin/update/{id} [put].
func (h *AccountHandler) HandlePromoteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.PromoteAdmin(r.Context(), session.FromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "promoted", nil)
}

// AuthEmailHandler issues and checks email verification keys.
type AuthEmailHandler struct {
	AuthEmailService *service.AuthEmailService
}

// HandleIssue godoc
//
//	@Summary		Mail a verification key
//	@Description	Replaces any earlier key for the address. The key is never returned.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		petsdk.AuthEmailRequest	true	"email"
//	@Success		200		{object}	petsdk.Envelope[any]	"sent"
//	@Router			/auth/email [post].
func (h *AuthEmailHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req petsdk.AuthEmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.AuthEmailService.IssueOrReplace(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "auth key sent", nil)
}

// HandleCheck godoc
//
//	@Summary		Check a verification key
//	@Description	code 1 when the key is the latest one for the email, code 0 otherwise.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		petsdk.AuthEmailCheckRequest	true	"email and key"
//	@Success		200		{object}	petsdk.Envelope[any]			"result"
//	@Router			/auth/email/check [post].
func (h *AuthEmailHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req petsdk.AuthEmailCheckRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := h.AuthEmailService.IsLatest(r.Context(), req.Email, req.AuthKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeFailure(w, http.StatusOK, service.ErrAuthKeyMismatch.Error())
		return
	}
	writeOK(w, "auth key confirmed", nil)
}
