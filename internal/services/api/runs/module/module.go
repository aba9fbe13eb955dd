// Package module wires runs into the API using modkit
package module

import (
	"net/http"

	modkit "staymeter/internal/modkit"
	"staymeter/internal/modkit/httpkit"
	str "staymeter/internal/platform/strings"
	runshttp "staymeter/internal/services/api/runs/http"
	runssvc "staymeter/internal/services/api/runs/service"
	workerdom "staymeter/internal/services/runs/domain"
)

// Ports declares the required injected worker port(s) for this API module
type Ports struct {
	Runner workerdom.RunnerPort
	Reader workerdom.ReaderPort
}

// Module implements the runs API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc runssvc.Service
}

// New constructs the runs API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("runs"),
		modkit.WithPrefix("/runs"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Runner == nil || injected.Reader == nil {
		panic("runs API module requires Runner and Reader ports (from services/runs)")
	}

	svc := runssvc.New(injected.Runner, injected.Reader)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptRunsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		runshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
