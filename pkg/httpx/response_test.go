package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petproject/community/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteScriptHref(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteScriptHref(rec, "/notice?page=0", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, `<script>location.href="/notice?page=0";</script>`, rec.Body.String())

	rec = httptest.NewRecorder()
	httpx.WriteScriptHref(rec, "/", "admins only")
	require.Equal(t, `<script>alert("admins only");location.href="/";</script>`, rec.Body.String())
}

func TestWriteScriptBackEscapes(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteScriptBack(rec, `</script><img src=x>"`)

	body := rec.Body.String()
	require.True(t, strings.HasSuffix(body, "history.back();</script>"))
	require.Equal(t, 1, strings.Count(body, "</script>"), "message must not close the element")
	require.Contains(t, body, `\u003c/script\u003e`)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"title":"hi"}`))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
	require.Equal(t, "hi", v.Title)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
	require.ErrorContains(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v), "empty")

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{"))
	require.ErrorContains(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v), "malformed")
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mw("outer"), nil, mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}
