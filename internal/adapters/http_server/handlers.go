package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jruizdesign/HotelManagement/internal/app"
	"github.com/jruizdesign/HotelManagement/internal/domain"
)

type Handlers struct {
	Q  *app.QueryService
	FD *app.FrontDeskService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/rooms", h.listRooms)
	s.mux.Get("/v1/bookings", h.listBookings)
	s.mux.Get("/v1/logs", h.listLogs)
	s.mux.Get("/v1/guests", h.listGuests)
	s.mux.Get("/v1/stats", h.stats)
	s.mux.Patch("/v1/rooms/{id}/status", h.updateRoomStatus)
	s.mux.Post("/v1/bookings", h.createBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps the core's error taxonomy onto problem+json responses.
// Anything outside the taxonomy is a persistence failure and stays opaque.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeProblem(w, http.StatusBadRequest, "Invalid Status", "status must be one of available, occupied, cleaning, maintenance")
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeProblem(w, http.StatusBadRequest, "Invalid Date Range", "check-out must be strictly after check-in")
	case errors.Is(err, domain.ErrEmptyGuestName):
		writeProblem(w, http.StatusBadRequest, "Invalid Guest", "guest name is required")
	default:
		log.Error().Err(err).Msg("operation failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Q.ListRooms(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rooms)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Q.ListBookings(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, bookings)
}

func (h *Handlers) listLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Q.ListLogs(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, logs)
}

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Q.ListGuests(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, guests)
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Q.DashboardStats(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, st)
}

func (h *Handlers) updateRoomStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON object with a status field")
		return
	}
	room, err := h.FD.UpdateRoomStatus(r.Context(), id, domain.RoomStatus(req.Status))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(room); err != nil {
		log.Error().Err(err).Msg("failed to write updateRoomStatus body")
	}
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuestName string `json:"guestName"`
		RoomID    int64  `json:"roomId"`
		CheckIn   string `json:"checkIn"`
		CheckOut  string `json:"checkOut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed booking payload")
		return
	}
	b, err := h.FD.CreateBooking(r.Context(), req.GuestName, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(b); err != nil {
		log.Error().Err(err).Msg("failed to write createBooking body")
	}
}
