// Package api composes the HTTP API for questhud
package api

import (
	phttp "questhud/internal/platform/net/http"

	"questhud/internal/modkit"
	"questhud/internal/modkit/httpkit"
	"questhud/internal/modkit/module"

	profilemod "questhud/internal/services/profile/module"
)

// Mount mounts the API modules onto the given router and returns the profile
// module so the bootstrap can fire the session updater
func Mount(r phttp.Router, deps modkit.Deps) *profilemod.Module {
	profile := profilemod.New(deps)

	mods := []module.Module{
		profile,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	return profile
}
