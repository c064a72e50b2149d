package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ersonp/chargen/internal/application/handlers"
	"github.com/ersonp/chargen/internal/domain/entities"
)

// generateRequest is the POST /v1/generate body. Counts are pointers so an
// absent field falls back to the default while an explicit 0 is kept.
type generateRequest struct {
	Themes           []string `json:"themes"`
	Gender           string   `json:"gender"`
	PositiveFeatures *int     `json:"n_positive_features"`
	NegativeFeatures *int     `json:"n_negative_features"`
	Items            *int     `json:"n_items"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}

	outcome, err := s.deps.Generate.Handle(r.Context(), handlers.GenerateInput{
		Gender:           body.Gender,
		Themes:           body.Themes,
		PositiveFeatures: body.PositiveFeatures,
		NegativeFeatures: body.NegativeFeatures,
		Items:            body.Items,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if outcome.Shortage != nil {
		writeDetail(w, http.StatusPartialContent, outcome.Shortage.Error())
		return
	}
	writeJSON(w, http.StatusOK, outcome.Character)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	if _, err := entities.ParseKind(kind); err != nil {
		writeDetail(w, http.StatusNotFound, err.Error())
		return
	}

	rows, err := s.deps.List.Handle(r.Context(), kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps invalid arguments to 400 and everything else to 503.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, entities.ErrInvalidArgument) {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Error("store failure",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeDetail(w, http.StatusServiceUnavailable, "store unavailable")
}
