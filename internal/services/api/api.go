// Package api provides the HTTP API for the application
package api

import (
	"staymeter/internal/platform/config"
	"staymeter/internal/platform/logger"
	phttp "staymeter/internal/platform/net/http"
	"staymeter/internal/platform/store"

	"staymeter/internal/modkit"
	"staymeter/internal/modkit/httpkit"
	"staymeter/internal/modkit/module"
	"staymeter/internal/modkit/swaggerkit"

	analyticsmod "staymeter/internal/services/api/analytics/module"
	metamod "staymeter/internal/services/api/meta/module"
	apiruns "staymeter/internal/services/api/runs/module"

	// Worker runs module (owns the Runner and Reader ports)
	workerruns "staymeter/internal/services/runs/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the WORKER runs module first and extract its ports
	workerRuns := workerruns.New(deps)
	wp := module.MustPortsOf[workerruns.Ports](workerRuns)

	// Inject the worker ports into the API runs module
	apiRuns := apiruns.New(
		deps,
		modkit.WithPorts(apiruns.Ports{
			Runner: wp.Runner,
			Reader: wp.Reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		analyticsmod.New(deps),
		workerRuns, // include worker so its ports are registered
		apiRuns,    // API module that depends on the worker's ports
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
