package http

import (
	"net/http"

	"todoapi/internal/auth"
	"todoapi/internal/config"
	"todoapi/internal/http/handler"
	mw "todoapi/internal/http/middleware"
	"todoapi/internal/logging"
	"todoapi/internal/todo"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, tokens *auth.Tokens, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Requests(log))
	r.Use(mw.Recover(log, cfg.IsDevelopment()))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	r.Get("/", handler.Health)

	authSvc := &auth.Service{
		DB:     db,
		Hasher: auth.NewHasher(),
		Tokens: tokens,
		TTL:    cfg.JWTTTL,
	}
	ah := &handler.AuthHandler{Svc: authSvc, Log: log, Debug: cfg.IsDevelopment()}
	r.Post("/signup", ah.Signup)
	r.Post("/login", ah.Login)

	todoSvc := &todo.Service{DB: db}
	th := &handler.TodoHandler{Svc: todoSvc, Log: log, Debug: cfg.IsDevelopment()}

	// auth wraps the routes only, so unknown paths under /todos still 404
	requireAuth := auth.RequireAuth(tokens)
	r.Route("/todos", func(r chi.Router) {
		r.With(requireAuth).Post("/", th.Create)
		r.With(requireAuth).Get("/", th.List)
		r.With(requireAuth).Put("/{id}", th.Update)
		r.With(requireAuth).Delete("/{id}", th.Delete)
	})

	return r
}
