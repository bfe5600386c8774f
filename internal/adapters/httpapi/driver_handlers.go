package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FBenja/fleet-api/internal/app/drivers"
	"github.com/FBenja/fleet-api/internal/app/validate"
	"github.com/FBenja/fleet-api/internal/domain"
)

type driverRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NationalID    string `json:"national_id"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"`
}

type driverBody struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NationalID    string `json:"national_id"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"`
}

func (s *Server) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	ds, err := s.drivers.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]driverBody, 0, len(ds))
	for _, d := range ds {
		out = append(out, driverFromDomain(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	d, err := s.drivers.Get(r.Context(), domain.DriverID(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, driverFromDomain(d))
}

func (s *Server) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeDriver(w, r)
	if !ok {
		return
	}
	d, err := s.drivers.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, driverFromDomain(d))
}

func (s *Server) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeDriver(w, r)
	if !ok {
		return
	}
	d, err := s.drivers.Update(r.Context(), domain.DriverID(chi.URLParam(r, "id")), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, driverFromDomain(d))
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	if err := s.drivers.Delete(r.Context(), domain.DriverID(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMsg(w, http.StatusOK, "driver deleted")
}

func decodeDriver(w http.ResponseWriter, r *http.Request) (drivers.Input, bool) {
	var req driverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return drivers.Input{}, false
	}
	return drivers.Input{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		NationalID:    req.NationalID,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
	}, true
}

func driverFromDomain(d domain.Driver) driverBody {
	return driverBody{
		ID:            string(d.ID),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		NationalID:    d.NationalID,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: d.LicenseExpiry.Format(validate.DateLayout),
	}
}
