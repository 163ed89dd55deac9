package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/config"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/db"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/handlers"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/live"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
	api "github.com/Ashley-Bennett/tournamentOrganiser-sub002/routes"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/services"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/standings"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("websocket hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	workspaceRepo := repositories.NewPostgresWorkspaceRepository(dbConn)
	leagueRepo := repositories.NewPostgresLeagueRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	rosterRepo := repositories.NewPostgresRosterRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	snapshotRepo := repositories.NewPostgresStandingSnapshotRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	leagueService := services.NewLeagueService(leagueRepo, workspaceService)
	playerService := services.NewPlayerService(playerRepo, workspaceService)
	standingsService := services.NewStandingsService(
		tournamentRepo,
		rosterRepo,
		matchRepo,
		snapshotRepo,
		workspaceService,
		standings.DefaultRules(),
	)
	matchService := services.NewMatchService(
		matchRepo,
		tournamentRepo,
		rosterRepo,
		workspaceService,
		standingsService,
		hub,
		logger,
	)
	tournamentService := services.NewTournamentService(
		dbConn,
		tournamentRepo,
		leagueRepo,
		playerRepo,
		rosterRepo,
		matchRepo,
		snapshotRepo,
		workspaceService,
		standingsService,
		uploader,
		hub,
		logger,
	)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	matchHandler := handlers.NewMatchHandler(matchService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		workspaceHandler,
		leagueHandler,
		playerHandler,
		tournamentHandler,
		matchHandler,
		standingsHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if err := server.Close(); err != nil {
				logger.Error("forced close failed", slog.Any("error", err))
			}
			os.Exit(1)
		}
		logger.Info("server stopped")
	}
}
