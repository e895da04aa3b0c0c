package main

import (
	"context"
	"flag"
	"os"

	"dreach.in/configs"
	"dreach.in/configs/configsdatabase"
	"dreach.in/configs/configslog"
	"dreach.in/database"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run keeps every deferred release inside a function that returns before os.Exit.
func run() int {
	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	cfg := configs.Load()
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	db, err := configsdatabase.Open(cfg)
	if err != nil {
		configslog.Log.Error("Database initialization aborted", zap.Error(err))
		return 1
	}
	defer configsdatabase.Close(db)

	configslog.SLog.Info("Running database initialization...")
	if err := database.Initialize(context.Background(), db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		return 1
	}

	configslog.SLog.Info("Database initialization finished.")
	return 0
}
