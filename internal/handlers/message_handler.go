package handlers

import (
	"encoding/json"
	"net/http"

	"turakBack/internal/models"
	"turakBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	msg.SenderID = requester.UserID
	created, err := h.Service.CreateMessage(r.Context(), msg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	chatID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	page, pageSize := 1, 50
	if p := intParam(q, "page"); p != nil && *p > 0 {
		page = *p
	}
	if ps := intParam(q, "page_size"); ps != nil && *ps > 0 && *ps <= 200 {
		pageSize = *ps
	}
	messages, err := h.Service.GetMessagesForChat(r.Context(), chatID, page, pageSize, requester)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkChatRead(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	chatID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Service.MarkChatRead(r.Context(), chatID, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MessageHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	count, err := h.Service.CountUnread(r.Context(), requester.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Service.DeleteMessage(r.Context(), id, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
