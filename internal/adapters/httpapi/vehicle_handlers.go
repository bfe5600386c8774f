package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FBenja/fleet-api/internal/app/vehicles"
	"github.com/FBenja/fleet-api/internal/domain"
)

type vehicleRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Plate        string  `json:"plate"`
	Year         int     `json:"year"`
	LoadCapacity float64 `json:"load_capacity"`
}

type vehicleBody struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Plate        string  `json:"plate"`
	Year         int     `json:"year"`
	LoadCapacity float64 `json:"load_capacity"`
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	vs, err := s.vehicles.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]vehicleBody, 0, len(vs))
	for _, v := range vs {
		out = append(out, vehicleFromDomain(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := s.vehicles.Get(r.Context(), domain.VehicleID(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleFromDomain(v))
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeVehicle(w, r)
	if !ok {
		return
	}
	v, err := s.vehicles.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicleFromDomain(v))
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeVehicle(w, r)
	if !ok {
		return
	}
	v, err := s.vehicles.Update(r.Context(), domain.VehicleID(chi.URLParam(r, "id")), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleFromDomain(v))
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := s.vehicles.Delete(r.Context(), domain.VehicleID(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMsg(w, http.StatusOK, "vehicle deleted")
}

func decodeVehicle(w http.ResponseWriter, r *http.Request) (vehicles.Input, bool) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return vehicles.Input{}, false
	}
	return vehicles.Input{
		Brand:        req.Brand,
		Model:        req.Model,
		Plate:        req.Plate,
		Year:         req.Year,
		LoadCapacity: req.LoadCapacity,
	}, true
}

func vehicleFromDomain(v domain.Vehicle) vehicleBody {
	return vehicleBody{
		ID:           string(v.ID),
		Brand:        v.Brand,
		Model:        v.Model,
		Plate:        v.Plate,
		Year:         v.Year,
		LoadCapacity: v.LoadCapacity,
	}
}
