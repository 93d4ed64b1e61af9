package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kleberrossi/Procman/cmd"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/migrations"
	"github.com/kleberrossi/Procman/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	l, err := logger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	gormDB, err := openDatabase(configs)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}

	if configs.RunMigrations {
		sqlDB, err := gormDB.DB()
		if err != nil {
			l.Fatal("Failed to get database handle", zap.Error(err))
		}
		if err = migrations.Run(sqlDB); err != nil {
			l.Fatal("Failed to apply migrations", zap.Error(err))
		}
		l.Info("Migrations applied")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, l)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		l.Fatal("Failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		l.Fatal("Failed to build router", zap.Error(err))
	}
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))

	startWebServer(e, configs.HTTPPort, l)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func startWebServer(e *echo.Echo, port string, l *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info("HTTP server listening", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
