// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/MKhiriev/go-appenv/internal/utils"
	"github.com/go-chi/chi/v5"
)

// envModuleExport is the name of the constant exported by /_app/env.js.
const envModuleExport = "env"

// getEnvModule serves the dynamic public environment as an ES module:
//
//	import { env } from '/_app/env.js';
//
// The values may change between deployments, so the module is never cached.
func (h *Handler) getEnvModule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	public := h.services.EnvService.PublicEnv(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSModule(w, envModuleExport, public, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing env module")
	}
}

func (h *Handler) getPublicEnv(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	public := h.services.EnvService.PublicEnv(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, public, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public env")
	}
}

type envVariableResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *Handler) getPublicEnvVariable(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, envVariableName)

	value, err := h.services.EnvService.Lookup(r.Context(), env.Public, name)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("name", name).Msg("public env variable lookup failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, envVariableResponse{Name: name, Value: value}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public env variable")
	}
}
