// Package routes declares HTTP routes alongside their OpenAPI operations so
// a handler's registration and its documentation come from one definition.
package routes

import (
	"net/http"

	"github.com/JaimeStill/mail-designer/pkg/openapi"
)

// Route is a single method and pattern bound to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group's routes in spec. Paths are built from
// basePath, the group prefix, and the route pattern. Operations without
// tags inherit the group's tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		if len(r.OpenAPI.Tags) == 0 {
			r.OpenAPI.Tags = g.Tags
		}
		spec.AddOperation(basePath+g.Prefix+r.Pattern, r.Method, r.OpenAPI)
	}

	for _, child := range g.Children {
		child.AddToSpec(basePath+g.Prefix, spec)
	}
}

func (g *Group) register(mux *http.ServeMux, prefix string) {
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+g.Prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix+g.Prefix)
	}
}

// Register mounts every group on mux and documents it in spec. Routes are
// registered without basePath because the owning module strips it; spec
// paths include it.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
		g.AddToSpec(basePath, spec)
	}
}
