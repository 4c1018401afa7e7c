package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"turakBack/internal/models"
	"turakBack/internal/services"
)

const dateLayout = "2006-01-02"

type ReservationHandler struct {
	Service *services.ReservationService
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, models.ErrInvalidDateRange)
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(w, models.ErrInvalidDateRange)
		return
	}
	created, err := h.Service.CreateReservation(r.Context(), models.Reservation{
		PropertyID: req.PostID,
		UserID:     requester.UserID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CheckAvailability is public: anyone browsing a listing may probe a date
// range before signing up.
func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	start, err := time.Parse(dateLayout, q.Get("start_date"))
	if err != nil {
		writeError(w, models.ErrInvalidDateRange)
		return
	}
	end, err := time.Parse(dateLayout, q.Get("end_date"))
	if err != nil {
		writeError(w, models.ErrInvalidDateRange)
		return
	}
	available, err := h.Service.CheckAvailability(r.Context(), propertyID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.AvailabilityResponse{Available: available})
}

func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req models.UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateStatus(r.Context(), id, req.Status, requester)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Service.DeleteReservation(r.Context(), id, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReservationHandler) GetByProperty(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	reservations, err := h.Service.GetByProperty(r.Context(), propertyID, requester)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	reservations, err := h.Service.GetByUser(r.Context(), requester.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
