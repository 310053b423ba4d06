package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/joaovmb/team-manager/handlers"
	"github.com/joaovmb/team-manager/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Player      *handlers.PlayerHandler
	Transaction *handlers.TransactionHandler
	Message     *handlers.MessageHandler
	Profile     *handlers.ProfileHandler
	Settings    *handlers.SettingsHandler
	Dashboard   *handlers.DashboardHandler
	WebSocket   *handlers.WebSocketHandler
}

func InitRoutes(h Handlers, jwtSecret []byte, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/signup", h.Auth.SignUp)
	router.Post("/auth/login", h.Auth.SignIn)
	router.Post("/auth/forgot-password", h.Auth.ForgotPassword)
	router.Post("/auth/reset-password", h.Auth.ResetPassword)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.List)
			r.Post("/", h.Player.Create)
			r.Get("/{id}", h.Player.Get)
			r.Put("/{id}", h.Player.Update)
			r.Delete("/{id}", h.Player.Delete)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Transaction.List)
			r.Post("/", h.Transaction.Create)
			r.Get("/export", h.Transaction.ExportCSV)
			r.Put("/{id}", h.Transaction.Update)
			r.Delete("/{id}", h.Transaction.Delete)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.Message.List)
			r.Get("/templates", h.Message.Templates)
			r.Post("/send", h.Message.Send)
			r.Delete("/{id}", h.Message.Delete)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile.Get)
			r.Put("/", h.Profile.Update)
			r.Post("/avatar", h.Profile.UploadAvatar)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Settings.Get)
			r.Put("/", h.Settings.Update)
		})

		r.Put("/account/email", h.Auth.ChangeEmail)
		r.Put("/account/password", h.Auth.ChangePassword)

		r.Get("/dashboard", h.Dashboard.Overview)
		r.Get("/ws", h.WebSocket.Serve)
	})

	return router
}
