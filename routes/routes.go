package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/handlers"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/middleware"
)

// SetupRoutes mounts the full API surface. Everything except signup, login
// and the websocket feed requires a Bearer token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	workspaceHandler *handlers.WorkspaceHandler,
	leagueHandler *handlers.LeagueHandler,
	playerHandler *handlers.PlayerHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// Live standings feed. The socket only pushes data out, so it stays open
	// to anyone who knows the tournament id.
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Route("/workspaces", func(r chi.Router) {
			r.Post("/", workspaceHandler.Create)
			r.Get("/", workspaceHandler.List)

			r.Route("/{workspaceID}", func(r chi.Router) {
				r.Get("/", workspaceHandler.GetByID)
				r.Put("/", workspaceHandler.Rename)
				r.Delete("/", workspaceHandler.Delete)

				r.Post("/leagues", leagueHandler.Create)
				r.Get("/leagues", leagueHandler.ListByWorkspace)

				r.Post("/players", playerHandler.Create)
				r.Get("/players", playerHandler.ListByWorkspace)

				r.Post("/tournaments", tournamentHandler.Create)
				r.Get("/tournaments", tournamentHandler.ListByWorkspace)
			})
		})

		r.Route("/leagues/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler.GetByID)
			r.Put("/", leagueHandler.Update)
			r.Delete("/", leagueHandler.Delete)
		})

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", playerHandler.GetByID)
			r.Put("/", playerHandler.Rename)
			r.Delete("/", playerHandler.Delete)
		})

		r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
			r.Get("/", tournamentHandler.GetByID)
			r.Put("/", tournamentHandler.Update)
			r.Delete("/", tournamentHandler.Delete)

			r.Post("/start", tournamentHandler.Start)
			r.Post("/complete", tournamentHandler.Complete)
			r.Post("/logo", tournamentHandler.UploadLogo)

			r.Post("/players", tournamentHandler.AddPlayer)
			r.Delete("/players/{playerID}", tournamentHandler.RemovePlayer)
			r.Post("/players/{playerID}/drop", tournamentHandler.DropPlayer)

			r.Post("/matches", matchHandler.Create)
			r.Get("/matches", matchHandler.ListByTournament)

			r.Get("/standings", standingsHandler.GetStandings)
			r.Get("/standings/final", standingsHandler.GetFinalStandings)
		})

		r.Route("/matches/{matchID}", func(r chi.Router) {
			r.Post("/result", matchHandler.ReportResult)
			r.Delete("/", matchHandler.Delete)
		})
	})
}
