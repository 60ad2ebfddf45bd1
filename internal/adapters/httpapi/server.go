package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/textview"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/app/catalog"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/app/roster"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/log"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/idempotency"
)

// Server exposes one trip plan, a destination catalog plus a traveler roster, over HTTP.
type Server struct {
	PlanID openapi_types.UUID

	Catalog *catalog.Service
	Roster  *roster.Service
	Idem    idempotency.Store
}

// NewServer mints a fresh plan id. idem may be nil to disable request replay.
func NewServer(catalogSvc *catalog.Service, rosterSvc *roster.Service, idem idempotency.Store) *Server {
	return &Server{
		PlanID:  uuid.New(),
		Catalog: catalogSvc,
		Roster:  rosterSvc,
		Idem:    idem,
	}
}

type Destination struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

type Traveler struct {
	FullName string `json:"fullName"`
	VIP      bool   `json:"vip"`
}

type AdmitTravelerResponse struct {
	Traveler
	Evicted nullable.Nullable[string] `json:"evicted,omitempty"`
}

type DestinationList struct {
	Destinations []Destination `json:"destinations"`
}

type TravelerList struct {
	Travelers []Traveler `json:"travelers"`
	Capacity  int        `json:"capacity"`
}

type Plan struct {
	PlanID       openapi_types.UUID `json:"planId"`
	Destinations []Destination      `json:"destinations"`
	Travelers    []Traveler         `json:"travelers"`
	Capacity     int                `json:"capacity"`
}

type addDestinationRequest struct {
	Name *string  `json:"name"`
	Cost *float64 `json:"cost"`
}

type admitTravelerRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Catalog.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Plan{
		PlanID:       s.PlanID,
		Destinations: toDestinations(ds),
		Travelers:    toTravelers(s.Roster.Travelers()),
		Capacity:     roster.Capacity,
	})
}

func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Catalog.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DestinationList{Destinations: toDestinations(ds)})
}

func (s *Server) AddDestination(w http.ResponseWriter, r *http.Request) {
	var body addDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid request body", map[string]any{"body": err.Error()})
		return
	}
	details := map[string]any{}
	if body.Name == nil {
		details["name"] = "is required"
	}
	if body.Cost == nil {
		details["cost"] = "is required"
	}
	if len(details) > 0 {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid destination", details)
		return
	}

	d, err := s.Catalog.Create(r.Context(), *body.Name, *body.Cost)
	if err != nil {
		if ae := (*catalog.Error)(nil); errors.As(err, &ae) {
			writeError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, Destination{Name: d.Name, Cost: d.Cost})
}

func (s *Server) RemoveDestination(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")
	if err := s.Catalog.Delete(r.Context(), name); err != nil {
		if ae := (*catalog.Error)(nil); errors.As(err, &ae) {
			writeError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
			return
		}
		s.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DisplayDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Catalog.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = textview.WriteDestinations(w, ds)
}

func (s *Server) ListTravelers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TravelerList{
		Travelers: toTravelers(s.Roster.Travelers()),
		Capacity:  roster.Capacity,
	})
}

func (s *Server) AdmitTraveler(w http.ResponseWriter, r *http.Request) {
	var body admitTravelerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid request body", map[string]any{"body": err.Error()})
		return
	}
	var first, last string
	if body.FirstName != nil {
		first = *body.FirstName
	}
	if body.LastName != nil {
		last = *body.LastName
	}

	out := s.Roster.AdmitWithOutcome(r.Context(), first, last)
	switch out.Kind {
	case roster.OutcomeAdded, roster.OutcomeAddedWithEviction:
		resp := AdmitTravelerResponse{Traveler: Traveler{FullName: string(out.Traveler), VIP: out.VIP}}
		if out.Kind == roster.OutcomeAddedWithEviction {
			resp.Evicted = nullable.NewNullableWithValue(string(out.Evicted))
		}
		writeJSON(w, http.StatusCreated, resp)
	case roster.OutcomeRejectedInvalid:
		details := map[string]any{}
		if first == "" {
			details["firstName"] = "must be non-empty"
		}
		if last == "" {
			details["lastName"] = "must be non-empty"
		}
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid traveler name", details)
	case roster.OutcomeRejectedAllVIP:
		writeError(w, r, http.StatusConflict, "TRIP_FULL_OF_VIPS", "Every spot on the trip is held by a VIP.", map[string]any{"capacity": roster.Capacity})
	default:
		writeError(w, r, http.StatusConflict, "TRIP_FULL", "The trip is full.", map[string]any{"capacity": roster.Capacity})
	}
}

func (s *Server) DeleteTraveler(w http.ResponseWriter, r *http.Request) {
	first, last := urlParam(r, "firstName"), urlParam(r, "lastName")
	if !s.Roster.Delete(r.Context(), first, last) {
		writeError(w, r, http.StatusNotFound, "TRAVELER_NOT_FOUND", "No traveler with this name is on the trip.", map[string]any{"fullName": first + " " + last})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DisplayTravelers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = textview.WriteTravelers(w, s.Roster.Travelers())
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Errorf(r.Context(), "httpapi: %v", err)
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

// urlParam returns a decoded path parameter. chi matches on the raw path when the
// request path carries escapes such as %2F, leaving the parameter encoded.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

func toDestinations(ds []domain.Destination) []Destination {
	out := make([]Destination, 0, len(ds))
	for _, d := range ds {
		out = append(out, Destination{Name: d.Name, Cost: d.Cost})
	}
	return out
}

func toTravelers(ts []domain.TravelerName) []Traveler {
	out := make([]Traveler, 0, len(ts))
	for _, t := range ts {
		out = append(out, Traveler{FullName: string(t), VIP: t.VIP()})
	}
	return out
}
