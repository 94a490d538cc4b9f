package main

import (
	"context"
	"fmt"

	"emergency-room/internal/app"
	"emergency-room/internal/config"
	"emergency-room/internal/logger"
	"emergency-room/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	ctx := context.Background()
	er := app.New(log, store.NewMemoryStore())

	for _, d := range cfg.Departments {
		if err := er.RegisterDepartment(ctx, d.Name, d.Capacity); err != nil {
			log.Fatal("Failed to register department",
				zap.String("department", d.Name),
				zap.Error(err),
			)
		}
	}

	names, err := er.Store().Departments(ctx)
	if err != nil {
		log.Warn("No departments configured, set ER_DEPARTMENTS=name:capacity,...")
		return
	}
	log.Info("Emergency room engine started",
		zap.Strings("departments", names),
		zap.Int("admitted", er.Census().Admitted(ctx)),
	)
}
