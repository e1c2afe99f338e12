package main

import (
	"net/http"

	"github.com/JaimeStill/mail-designer/internal/api"
	"github.com/JaimeStill/mail-designer/internal/config"
	"github.com/JaimeStill/mail-designer/internal/infrastructure"
	"github.com/JaimeStill/mail-designer/pkg/middleware"
	"github.com/JaimeStill/mail-designer/pkg/module"
	"github.com/JaimeStill/mail-designer/web/app"
	"github.com/JaimeStill/mail-designer/web/scalar"
)

type Modules struct {
	API    *api.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(
		"/app",
		apiModule.Domain.Sessions,
		infra.Logger,
		cfg.API.Pagination,
	)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger))

	scalarModule, err := scalar.NewModule("/scalar", cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
