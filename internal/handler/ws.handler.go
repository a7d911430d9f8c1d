package handler

import (
	"net/http"

	"linkora-server/internal/ws"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}
