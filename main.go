package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreach.in/configs"
	"dreach.in/configs/configsdatabase"
	"dreach.in/configs/configslog"
	"dreach.in/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := configs.Load()
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	db, err := configsdatabase.Open(cfg)
	if err != nil {
		configslog.Log.Error("Server could not start", zap.Error(err))
		return 1
	}
	defer configsdatabase.Close(db)

	engine := html.New("./views", ".html")
	engine.Reload(!cfg.IsProduction())

	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      "dreach",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	routes.SetupRoutes(app, routes.NewServices(db))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Server listening on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		configslog.Log.Error("Server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}
