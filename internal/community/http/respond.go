package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/httpx"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/petproject/community/pkg/slogx"
)

const (
	homePath      = "/main"
	loginFormPath = "/user/loginForm"
)

func writeOK(w http.ResponseWriter, msg string, data any) {
	httpx.WriteJSON(w, http.StatusOK, petsdk.Envelope[any]{
		Code:    petsdk.CodeSuccess,
		Message: msg,
		Data:    data,
	})
}

func writeFailure(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, petsdk.Envelope[any]{
		Code:    petsdk.CodeFailure,
		Message: msg,
	})
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, service.ErrAuthKeyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides unexpected errors from the client.
func messageFor(ctx context.Context, err error, code int) string {
	if code == http.StatusInternalServerError {
		slogx.FromContext(ctx).Error("request failed", slog.Any("error", err))
		return "internal error"
	}
	slogx.FromContext(ctx).Debug("request rejected", slog.Int("status", code), slog.Any("error", err))
	return err.Error()
}

// writeError renders err as a failure envelope. Unknown animals go home.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnknownAnimal) {
		http.Redirect(w, r, homePath, http.StatusFound)
		return
	}
	code := statusFor(err)
	writeFailure(w, code, messageFor(r.Context(), err, code))
}

// writeScriptError renders err for a form endpoint: a login prompt when
// there is no session, otherwise an alert and a step back.
func writeScriptError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownAnimal):
		http.Redirect(w, r, homePath, http.StatusFound)
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteScriptHref(w, loginFormPath, err.Error())
	default:
		httpx.WriteScriptBack(w, messageFor(r.Context(), err, statusFor(err)))
	}
}

// pathAnimal reads {animalId}. A malformed id is an unknown animal.
func pathAnimal(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("animalId"))
	if err != nil {
		return 0, service.ErrUnknownAnimal
	}
	return id, nil
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// queryInt reads an integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return n
}
