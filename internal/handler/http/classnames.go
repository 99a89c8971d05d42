package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/MKhiriev/go-appenv/internal/utils"
)

// maxClassNamesBodySize limits POST /api/classnames request bodies.
const maxClassNamesBodySize = 64 << 10

type mergeClassNamesRequest struct {
	Classes []classname.JSONValue `json:"classes"`
}

type mergeClassNamesResponse struct {
	Class string `json:"class"`
}

func (h *Handler) mergeClassNames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxClassNamesBodySize)

	var req mergeClassNamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Msg("class names request is too large")
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	merged := h.services.ClassNameService.Merge(ctx, classname.Values(req.Classes)...)

	if _, err := utils.WriteJSON(w, mergeClassNamesResponse{Class: merged}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing merged class names")
	}
}
