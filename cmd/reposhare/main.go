package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/akraev/reposhare/internal/app/server"
	"github.com/akraev/reposhare/internal/app/service"
	"github.com/akraev/reposhare/internal/config"
	"github.com/akraev/reposhare/internal/logger"
	"github.com/akraev/reposhare/internal/repository"
	"github.com/akraev/reposhare/internal/storage"
	"github.com/akraev/reposhare/internal/worker"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	hostname := options.Port
	resultHostname := options.ResultHostname
	filePath := options.FilePath
	dbName := options.DatabaseDSN
	useTLS := options.EnableHTTPS

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	var s service.Storage

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	if dbName != "" {
		zapLogger.Info("using db", zap.String("dbName", dbName))
		db := repository.InitDB(dbName, zapLogger)
		defer db.Close()
		s = repository.CreateLinkRepository(db, zapLogger)
		zapLogger.Info("Database connected and tables ready.")
	} else if filePath != "" {
		zapLogger.Info("using file store", zap.String("filePath", filePath))

		s, err = storage.NewFileStorage(filePath, zapLogger)
		if err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("using in memory storage")

		s, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	linkService := service.NewLink(s, zapLogger, resultHostname)
	auth := service.NewAuth(options.JWTSecret)
	github := service.NewGitHub(options.GitHubClientID, options.GitHubClientSecret, zapLogger)

	cleanup := worker.NewCleanupWorker(zapLogger, s, options.CleanupInterval)
	go cleanup.Run(ctx)

	r := server.Init(zapLogger, true, linkService, auth, github, options.TrustedSubnet)

	if useTLS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("reposhare.dev", "www.reposhare.dev"),
		}
		httpServer := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		if err := httpServer.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		if err := http.ListenAndServe(hostname, r); err != nil {
			panic(err)
		}
	}
}
