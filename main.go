package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"fabforge/bridge"
)

// noinspection GoUnusedExportedFunction
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	initStart := time.Now()

	logger.Info("Loading FabForge Nakama plugin...")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if _, err := bridge.Init(ctx, logger, initializer, bridge.ConfigFromEnv(env)); err != nil {
		logger.Error("Failed to initialise PlayFab bridge: %v", err)
		return err
	}

	logger.Info("FabForge Nakama plugin loaded in '%d' msec.", time.Since(initStart).Milliseconds())
	return nil
}
