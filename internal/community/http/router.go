package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/session"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/httpx"
	"github.com/petproject/community/pkg/jwtx"
	"github.com/petproject/community/pkg/otelx"
	"github.com/petproject/community/pkg/slogx"

	_ "github.com/petproject/community/api/community" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	sessions     *session.Manager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	UserService      *service.UserService
	AuthEmailService *service.AuthEmailService
	BoardService     *service.BoardService
	RankingService   *service.RankingService
}

func NewRouter(
	keys *jwtx.KeySet,
	sessions *session.Manager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		sessions:     sessions,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Logger first so tracing and session resolution log with req_id.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		otelx.HTTPMiddleware,
		r.sessions.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerAuthEmail()
	r.registerNotice()
	r.registerAnimalBoards()
	r.registerRanking()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/{file}", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pet Community API
//	@version		0.1.0
//	@description	Notice, qna and boast boards for pet owners.
//	@description
//	@description	JSON endpoints answer with {code, message, data}; code 1 is success.
//	@description	Form endpoints answer with a small script page that alerts and navigates.
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccount() {
	h := &AccountHandler{UserService: r.UserService}

	// POST /login - strict rate limit by IP + username to slow password guessing
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /join",
		httpx.Chain(http.HandlerFunc(h.HandleJoin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.HandleFunc("GET /logout", h.HandleLogout)

	// Recovery lookups - lenient, they reveal nothing without all fields
	r.Mux.Handle("POST /id/modal",
		httpx.Chain(http.HandlerFunc(h.HandleFindUsername),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /pw/modal",
		httpx.Chain(http.HandlerFunc(h.HandleStartPasswordReset),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /pw/change",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/user/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /api/user/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /user/admin/update/{id}",
		httpx.Chain(http.HandlerFunc(h.HandlePromoteAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuthEmail() {
	h := &AuthEmailHandler{AuthEmailService: r.AuthEmailService}

	// POST /auth/email - strict, every call sends a mail
	r.Mux.Handle("POST /auth/email",
		httpx.Chain(http.HandlerFunc(h.HandleIssue),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/email/check",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerNotice() {
	h := &BoardHandler{BoardService: r.BoardService}

	r.Mux.Handle("GET /notice",
		httpx.Chain(http.HandlerFunc(h.HandleNoticeList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /notice/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleNoticeDetail),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /notice",
		httpx.Chain(http.HandlerFunc(h.HandleNoticeCreate),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /notice/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleNoticeUpdate),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /notice/{id}",
		httpx.Chain(h.HandleDelete(domain.BoardNotice),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

// registerAnimalBoards serves qna and boast through one {board} pattern;
// separate /notice/{id} and /{animalId}/qna patterns would overlap without
// either being more specific.
func (r *Router) registerAnimalBoards() {
	h := &BoardHandler{BoardService: r.BoardService}

	r.Mux.Handle("GET /{animalId}/{board}",
		httpx.Chain(h.HandleAnimalList(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /{animalId}/{board}/{id}",
		httpx.Chain(h.HandleAnimalDetail(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /{animalId}/{board}",
		httpx.Chain(h.HandleAnimalCreate(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /{animalId}/{board}/{id}",
		httpx.Chain(h.HandleAnimalUpdate(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /{animalId}/qna/{id}/comment",
		httpx.Chain(http.HandlerFunc(h.HandleCommentCreate),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /qna/{id}",
		httpx.Chain(h.HandleDelete(domain.BoardQna),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /boast/{id}",
		httpx.Chain(h.HandleDelete(domain.BoardBoast),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRanking() {
	h := &RankingHandler{RankingService: r.RankingService, BoardService: r.BoardService}

	r.Mux.Handle("GET /main",
		httpx.Chain(http.HandlerFunc(h.HandleMain),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /{animalId}/boast/rank",
		httpx.Chain(http.HandlerFunc(h.HandleBoastRank),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /{$}", http.RedirectHandler(homePath, http.StatusFound))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
