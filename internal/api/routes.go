package api

import (
	"net/http"

	"github.com/JaimeStill/mail-designer/internal/config"
	"github.com/JaimeStill/mail-designer/internal/sessions"
	"github.com/JaimeStill/mail-designer/pkg/openapi"
	"github.com/JaimeStill/mail-designer/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	sessionsHandler := sessions.NewHandler(domain.Sessions, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		sessionsHandler.Routes(),
	)
}
