package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/tournament-fixtures/handlers"
	"github.com/Dosada05/tournament-fixtures/middleware"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	RateLimitRPM   int
	Logger         *slog.Logger
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	fixtureHandler *handlers.FixtureHandler,
	scheduleHandler *handlers.ScheduleHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authenticate := middleware.Authenticate(opts.JWTSecret, opts.Logger)
	superAdminOnly := middleware.RequireRole(models.RoleSuperAdmin)

	// Websocket upgrades are long-lived, so they skip the timeout and rate limit.
	router.With(authenticate).Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitRPM))
		r.Use(chiMiddleware.Timeout(30 * time.Second))
		r.Use(authenticate)

		r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
			r.Get("/schedule", scheduleHandler.GetSchedule)
			r.Get("/fixtures", fixtureHandler.ListFixtures)
			r.Get("/style", scheduleHandler.GetStyle)

			// Генерация и экспорт только для супер-админов
			r.Group(func(r chi.Router) {
				r.Use(superAdminOnly)
				r.Post("/fixtures", fixtureHandler.CreateCustomFixture)
				r.Post("/fixtures/gamebreaker", fixtureHandler.GenerateGameBreaker)
				r.Post("/fixtures/minigamebreaker", fixtureHandler.GenerateMiniGameBreaker)
				r.Post("/fixtures/roundrobin", fixtureHandler.GenerateRoundRobin)
				r.Post("/fixtures/playoffs", fixtureHandler.GeneratePlayoffs)
				r.Put("/style", scheduleHandler.SetStyle)
				r.Post("/export", scheduleHandler.PublishSchedule)
				r.Delete("/export", scheduleHandler.UnpublishSchedule)
			})
		})

		r.Route("/fixtures/{fixtureID}", func(r chi.Router) {
			r.Get("/", fixtureHandler.GetFixture)
			r.Patch("/", fixtureHandler.UpdateFixture)
			r.Get("/eligible-players", fixtureHandler.EligiblePlayers)
			r.With(superAdminOnly).Delete("/", fixtureHandler.DeleteFixture)
			r.With(superAdminOnly).Post("/reset", fixtureHandler.ResetPlayoffFixture)
		})

		r.With(superAdminOnly).Delete("/fixture-groups/{groupID}", fixtureHandler.DeleteGroup)
	})
}
