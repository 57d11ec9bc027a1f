package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mulozi/api/internal/core/ports"
)

func NewHandler(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	tokens ports.TokenService,
	users ports.UserRepository,
	protectedRoutes []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(Guard(tokens, users, protectedRoutes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("welcome"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(RefreshGuard(tokens)).Post("/refresh", authHandler.Refresh)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/me", userHandler.GetMe)
	})

	return r
}
