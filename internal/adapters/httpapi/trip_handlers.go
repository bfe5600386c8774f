package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FBenja/fleet-api/internal/app/trips"
	"github.com/FBenja/fleet-api/internal/domain"
)

type tripRequest struct {
	VehicleID     string    `json:"vehicle_id"`
	DriverID      string    `json:"driver_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DistanceKM    float64   `json:"distance_km"`
	Notes         *string   `json:"notes"`
}

type tripBody struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	DriverID      string    `json:"driver_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DistanceKM    float64   `json:"distance_km"`
	Notes         *string   `json:"notes,omitempty"`
}

type historyEntryBody struct {
	ID            string    `json:"id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DistanceKM    float64   `json:"distance_km"`
	DriverName    string    `json:"driver_name"`
	VehicleInfo   string    `json:"vehicle_info"`
}

type totalKMBody struct {
	ID      string  `json:"id"`
	TotalKM float64 `json:"total_km"`
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := s.trips.Create(r.Context(), trips.CreateInput{
		VehicleID:     domain.VehicleID(req.VehicleID),
		DriverID:      domain.DriverID(req.DriverID),
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DistanceKM:    req.DistanceKM,
		Notes:         req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripBody{
		ID:            string(t.ID),
		VehicleID:     string(t.VehicleID),
		DriverID:      string(t.DriverID),
		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
		Origin:        t.Origin,
		Destination:   t.Destination,
		DistanceKM:    t.DistanceKM,
		Notes:         t.Notes,
	})
}

func (s *Server) handleTripHistory(w http.ResponseWriter, r *http.Request) {
	kind, ok := trips.ParseEntityKind(chi.URLParam(r, "type"))
	if !ok {
		writeMsg(w, http.StatusBadRequest, "invalid entity type")
		return
	}

	entries, err := s.trips.History(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]historyEntryBody, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryBody{
			ID:            string(e.TripID),
			DepartureTime: e.DepartureTime,
			ArrivalTime:   e.ArrivalTime,
			Origin:        e.Origin,
			Destination:   e.Destination,
			DistanceKM:    e.DistanceKM,
			DriverName:    e.DriverName,
			VehicleInfo:   e.VehicleInfo,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTripTotalKM(w http.ResponseWriter, r *http.Request) {
	kind, ok := trips.ParseEntityKind(chi.URLParam(r, "type"))
	if !ok {
		writeMsg(w, http.StatusBadRequest, "invalid entity type")
		return
	}

	id := chi.URLParam(r, "id")
	total, err := s.trips.TotalDistance(r.Context(), kind, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totalKMBody{ID: id, TotalKM: total})
}
