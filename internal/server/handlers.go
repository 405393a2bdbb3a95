package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matzehuels/elbow/pkg/elbow"
	errs "github.com/matzehuels/elbow/pkg/errors"
	elbowio "github.com/matzehuels/elbow/pkg/io"
)

// RouteRequest is the body of POST /v1/route.
type RouteRequest struct {
	From elbow.Anchor `json:"from"`
	To   elbow.Anchor `json:"to"`
	elbowio.Settings
}

// RouteResponse is the body returned by POST /v1/route.
type RouteResponse struct {
	Points elbow.Path `json:"points"`
}

type errorResponse struct {
	Error *elbowio.ErrorBody `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.cfg.Version})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := req.Normalize(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	path, err := elbow.Route(req.From, req.To, req.Options(s.cfg.Defaults)...)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, RouteResponse{Points: path})
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	doc, err := elbowio.ReadJSON(r.Body)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	doc.Defaults = doc.Defaults.Merge(s.cfg.Defaults)

	res, err := s.runner.Execute(r.Context(), doc)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res.Results)
}

func statusFor(err error) int {
	if errs.IsInvalidInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge,
			errs.Wrap(errs.ErrCodeInvalidInput, err, "request body exceeds %d bytes", maxErr.Limit))
		return
	}
	if errs.GetCode(err) == "" {
		err = errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode request")
	}
	writeError(w, http.StatusBadRequest, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: elbowio.NewErrorBody(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
