package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"turakBack/internal/models"
)

// RequesterFromContext pulls the authenticated user set by the JWT
// middleware out of the request context.
func RequesterFromContext(r *http.Request) (models.Requester, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok || userID == 0 {
		return models.Requester{}, false
	}
	role, _ := r.Context().Value("role").(string)
	return models.Requester{UserID: userID, Role: role}, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps service errors to status codes; anything unrecognized is a
// logged 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrInvalidTotalPrice),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrTransitionNotAllowed),
		errors.Is(err, models.ErrInvalidResetCode),
		errors.Is(err, models.ErrInvalidPassword):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrUnauthenticated),
		errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, models.ErrPropertyNotFound),
		errors.Is(err, models.ErrReservationNotFound),
		errors.Is(err, models.ErrComplaintNotFound),
		errors.Is(err, models.ErrChatNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrDateConflict),
		errors.Is(err, models.ErrDuplicateFavorite),
		errors.Is(err, models.ErrDuplicateComplaint),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicatePhone):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
