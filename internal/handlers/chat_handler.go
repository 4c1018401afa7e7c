package handlers

import (
	"encoding/json"
	"net/http"

	"turakBack/internal/models"
	"turakBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) GetOrCreateChat(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	var req struct {
		UserID int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	chat, err := h.Service.GetOrCreateChat(r.Context(), requester.UserID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
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
	chat, err := h.Service.GetChatByID(r.Context(), id, requester)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (h *ChatHandler) GetMyChats(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	chats, err := h.Service.GetChatsForUser(r.Context(), requester.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Service.DeleteChat(r.Context(), id, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
