package main

import (
	"fmt"
	"os"

	"buddyai/internal/auth"
	"buddyai/internal/cli"
	"buddyai/internal/config"
	"buddyai/internal/service"
	"buddyai/internal/store"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
	}
	defer logger.Sync()

	database, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	local := store.NewSQLiteStore(database)

	// Cloud sync only engages with both a sync URL and a signed-in user.
	authMgr := auth.NewManager(cfg.SessionPath)
	var remote store.Store
	if cfg.SyncURL != "" {
		session, err := authMgr.Current()
		if err != nil {
			return err
		}
		if session != nil {
			remote = store.NewRemoteStore(cfg.SyncURL, session.UserID)
		}
	}
	st := store.NewDualStore(local, remote, logger)

	roadmapSvc := service.NewRoadmapService(st)
	statsSvc := service.NewStatsService(st)

	app := &cli.App{
		Tasks:    service.NewTaskService(st),
		Roadmaps: roadmapSvc,
		Notes:    service.NewNoteService(st),
		Sessions: service.NewSessionService(st),
		Stats:    statsSvc,
		Settings: service.NewSettingsService(st),
		Chat:     service.NewChatService(st, roadmapSvc, statsSvc, logger),
		Auth:     authMgr,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
