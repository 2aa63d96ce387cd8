package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MgDark0/wisecar/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes is mounted under /api/cars. The static routes must be registered
// alongside /{id}; chi matches them first.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/featured", s.featured)
	r.Get("/filter", s.filter)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	cars, err := s.Store.List(r.Context())
	if err != nil {
		s.logError("list cars failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}
	kit.WriteJSON(w, http.StatusOK, cars)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid car ID")
		return
	}

	c, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.logError("get car failed", err, zap.Int("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch car details")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Car not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	cars, err := s.Store.Featured(r.Context())
	if err != nil {
		s.logError("list featured cars failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch featured cars")
		return
	}
	kit.WriteJSON(w, http.StatusOK, cars)
}

func (s *Server) filter(w http.ResponseWriter, r *http.Request) {
	q, perr := parseFilterQuery(r)
	if perr != nil {
		kit.WriteError(w, r, http.StatusBadRequest, perr.Error())
		return
	}

	cars, err := s.Store.Filter(r.Context(), q)
	if err != nil {
		s.logError("filter cars failed", err, zap.String("type", string(q.Type)))
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to filter cars")
		return
	}
	kit.WriteJSON(w, http.StatusOK, cars)
}

// Filter query rejections double as the response message.
var (
	errInvalidCarType     = errors.New("Invalid car type")
	errInvalidPriceFilter = errors.New("Invalid price filter")
)

func parseFilterQuery(r *http.Request) (FilterQuery, error) {
	params := r.URL.Query()

	typ := TypeAll
	if raw := params.Get("type"); raw != "" {
		typ = CarType(raw)
	}
	if typ != TypeAll && !typ.Valid() {
		return FilterQuery{}, errInvalidCarType
	}

	minPrice, err := parsePriceParam(params.Get("minPrice"))
	if err != nil {
		return FilterQuery{}, errInvalidPriceFilter
	}
	maxPrice, err := parsePriceParam(params.Get("maxPrice"))
	if err != nil {
		return FilterQuery{}, errInvalidPriceFilter
	}

	return FilterQuery{Type: typ, MinPrice: minPrice, MaxPrice: maxPrice}, nil
}

func parsePriceParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Server) logError(msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
	}
}
