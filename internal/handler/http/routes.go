package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envModulePath   = "/_app/env.js"
	publicEnvPath   = "/api/env/public"
	classNamesPath  = "/api/classnames"
	versionPath     = "/api/version/"
	envVariableName = "name"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get(envModulePath, h.getEnvModule)

	router.Route(publicEnvPath, func(r chi.Router) {
		r.Get("/", h.getPublicEnv)
		r.Get("/{"+envVariableName+"}", h.getPublicEnvVariable)
	})

	router.Post(classNamesPath, h.mergeClassNames)
	router.Get(versionPath, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
