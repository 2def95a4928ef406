package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/prism-home/prism/internal/bridge"
	"github.com/prism-home/prism/internal/circadian"
	"github.com/prism-home/prism/internal/config"
	"github.com/prism-home/prism/internal/prism"
	"github.com/prism-home/prism/internal/repos"
	statemanager "github.com/prism-home/prism/internal/stateManager"
)

func main() {

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: "logs/prismd.log",
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("prismd starting")

	// read the config file
	config.InitialiseConfig()
	cfg := config.ReadConfig()

	db, err := sql.Open("sqlite3", viper.GetString("databasePath"))
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	stateRepo, err := repos.NewStateRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	// create/wire up services
	bridgeService := bridge.NewBridgeAPIService(logger)
	eventConsumer := bridge.NewBridgeEventConsumer(logger)
	circadianService := circadian.NewCircadianService(logger)
	stateManager := statemanager.NewStateManager(logger, stateRepo)

	app := prism.NewPrism(logger, cfg.CircadianGroups, stateManager, bridgeService, eventConsumer, stateRepo, circadianService)

	if err := app.Initialise(); err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)

	logger.Info("prismd is closing")
}
