package api

import (
	"github.com/JaimeStill/mail-designer/internal/config"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Sessions sessions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	exporter := export.New(&cfg.Export, runtime.Storage, runtime.Logger)

	return &Domain{
		Sessions: sessions.New(
			&cfg.Designer,
			exporter,
			runtime.Logger,
			runtime.Pagination,
		),
	}
}

// Start registers domain background work with the lifecycle coordinator.
func (d *Domain) Start(runtime *Runtime) error {
	return d.Sessions.Start(runtime.Lifecycle)
}
