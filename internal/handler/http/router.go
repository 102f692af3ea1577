package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontohr/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	timeRecordHandler TimeRecordHandler,
	justificationHandler JustificationHandler,
	masterHandler MasterHandler,
	reportHandler ReportHandler,
	passwordResetHandler PasswordResetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			// Unauthenticated: the employee lost access and identifies by CPF.
			r.Post("/password-reset-requests", passwordResetHandler.Create)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
				})
			})

			r.Route("/time-records", func(r chi.Router) {
				r.Post("/punch", timeRecordHandler.Punch)
				r.Get("/today", timeRecordHandler.GetToday)
				r.Get("/my", timeRecordHandler.ListMine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", timeRecordHandler.ListForDate)
					r.Put("/{id}/adjust", timeRecordHandler.Adjust)
				})
			})

			r.Route("/justifications", func(r chi.Router) {
				r.Post("/", justificationHandler.Create)
				r.Get("/my", justificationHandler.ListMine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/on-behalf", justificationHandler.ManagerCreate)
					r.Get("/pending", justificationHandler.ListPending)
					r.Put("/{id}/decide", justificationHandler.Decide)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/departments", masterHandler.ListDepartments)
				r.Get("/functions", masterHandler.ListFunctions)
				r.Get("/employment-types", masterHandler.ListEmploymentTypes)
				r.Get("/justification-types", masterHandler.ListJustificationTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)

					r.Post("/departments", masterHandler.CreateDepartment)
					r.Put("/departments/{id}", masterHandler.UpdateDepartment)
					r.Patch("/departments/{id}/status", masterHandler.ToggleDepartment)

					r.Post("/functions", masterHandler.CreateFunction)
					r.Put("/functions/{id}", masterHandler.UpdateFunction)
					r.Patch("/functions/{id}/status", masterHandler.ToggleFunction)

					r.Post("/employment-types", masterHandler.CreateEmploymentType)
					r.Put("/employment-types/{id}", masterHandler.UpdateEmploymentType)
					r.Patch("/employment-types/{id}/status", masterHandler.ToggleEmploymentType)

					r.Post("/justification-types", masterHandler.CreateJustificationType)
					r.Put("/justification-types/{id}", masterHandler.UpdateJustificationType)
					r.Patch("/justification-types/{id}/status", masterHandler.ToggleJustificationType)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/my/pdf", reportHandler.DownloadMyPDF)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/{userId}/pdf", reportHandler.DownloadPDF)
					r.Get("/{userId}/xlsx", reportHandler.DownloadXLSX)
					r.Get("/{userId}/hour-bank", reportHandler.GetHourBank)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/password-reset-requests", passwordResetHandler.ListPending)
				r.Put("/password-reset-requests/{id}/resolve", passwordResetHandler.Resolve)
			})
		})
	})

	return r
}
