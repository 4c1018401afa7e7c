package handlers

import (
	"net/http"

	"turakBack/internal/models"
	"turakBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Service.AddToFavorites(r.Context(), requester.UserID, propertyID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Service.RemoveFromFavorites(r.Context(), requester.UserID, propertyID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
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
	favorite, err := h.Service.IsFavorite(r.Context(), requester.UserID, propertyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

func (h *FavoriteHandler) GetMyFavorites(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	favorites, err := h.Service.GetFavoritesByUser(r.Context(), requester.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}
