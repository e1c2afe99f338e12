// Package api assembles the JSON API module: domain systems, their routes,
// the generated OpenAPI document, and the module middleware.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/mail-designer/internal/config"
	"github.com/JaimeStill/mail-designer/internal/infrastructure"
	"github.com/JaimeStill/mail-designer/pkg/middleware"
	"github.com/JaimeStill/mail-designer/pkg/module"
	"github.com/JaimeStill/mail-designer/pkg/openapi"
)

// Module is the mounted API together with the domain it serves.
type Module struct {
	*module.Module
	Domain *Domain
}

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(cfg, runtime)

	if err := domain.Start(runtime); err != nil {
		return nil, fmt.Errorf("domain start failed: %w", err)
	}

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return &Module{Module: m, Domain: domain}, nil
}
