package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lumeaddon/lume/internal/assemble"
	"github.com/lumeaddon/lume/internal/config"
	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/profile"
	"github.com/lumeaddon/lume/internal/publish"
	"github.com/lumeaddon/lume/internal/server"
)

func main() {

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: "logs/lume.log",
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("lumed starting")

	// read the config file
	if err := config.InitialiseConfig(); err != nil {
		logger.Fatal(err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(viper.GetString("dataDir"), "lume.db"))
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	// create/wire up services
	store, err := profile.NewStore(logger, db)
	if err != nil {
		logger.Fatal(err)
	}
	names := hass.NewNames(config.EntityPrefix)
	assembler := assemble.NewAssembler(logger, names)
	publisher := publish.NewPublisher(logger, viper.GetString("haConfigDir"))
	srv := server.NewServer(logger, store, assembler, publisher)

	httpServer := &http.Server{
		Addr:    viper.GetString("listenAddr"),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	<-quitChannel

	// cleanup before exit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	logger.Info("lume is closing")
}
