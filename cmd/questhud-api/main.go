// @title         Questhud API
// @version       0.1.0
// @description   Read only endpoints for the progression ledger and calendar

package main

import (
	"context"

	"questhud/internal/modkit"
	"questhud/internal/platform/config"
	"questhud/internal/platform/logger"
	phttp "questhud/internal/platform/net/http"

	"questhud/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount the API and keep the profile module for the session kick
	profile := api.Mount(srv.Router(), modkit.Deps{
		Log: *l,
		Cfg: root,
	})

	// fire the one shot feed merge for the boot session in the background;
	// failures are absorbed inside the service
	go func() {
		if _, err := profile.Service().Refresh(context.Background()); err != nil {
			l.Error().Err(err).Msg("session refresh failed")
		}
	}()

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
