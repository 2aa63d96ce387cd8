package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MgDark0/wisecar/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes is mounted under /api/contact.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.submit)
	return r
}

type submitResp struct {
	Message    string     `json:"message"`
	Submission Submission `json:"submission"`
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub Submission
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		kit.WriteErrorDetails(w, r, http.StatusBadRequest, "Invalid form data", err.Error())
		return
	}

	if err := sub.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			kit.WriteErrorDetails(w, r, http.StatusBadRequest, "Invalid form data", ve.Error())
			return
		}
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	if err := s.Store.Add(r.Context(), sub); err != nil {
		if s.Log != nil {
			s.Log.Error("store contact submission failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	kit.WriteJSON(w, http.StatusCreated, submitResp{
		Message:    "Contact form submitted successfully",
		Submission: sub,
	})
}
