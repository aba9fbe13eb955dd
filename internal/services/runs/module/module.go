// Package module implements the runs service module
package module

import (
	"staymeter/internal/core/stay"
	"staymeter/internal/modkit"
	"staymeter/internal/modkit/httpkit"
	"staymeter/internal/modkit/repokit"
	"staymeter/internal/services/runs/domain"
	"staymeter/internal/services/runs/repo"
	"staymeter/internal/services/runs/service"
)

// Ports exposed by the runs module
type Ports struct {
	Runner domain.RunnerPort
	Reader domain.ReaderPort
}

// Module implements the runs service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new runs module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, deps.CH, service.Config{
		Engine: stay.Options{
			IQRMultiplier:       opts.IQRMultiplier,
			TopAffiliates:       opts.TopAffiliates,
			IncludeInvalidInIQR: opts.IncludeInvalidInIQR,
			ErrorOnEmpty:        opts.ErrorOnEmpty,
		},
		Archive:      opts.Archive,
		ArchiveTable: opts.ArchiveTable,
		ListLimit:    opts.ListLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Runner: svc,
		Reader: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "runs" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
