package handler

import (
	"net/http"

	"linkora-server/internal/usecase"
	"linkora-server/pkg/response"
)

// AdminHandler exposes the admin listing endpoint. It is a thin
// collaborator over the identity store's query surface.
type AdminHandler struct {
	auth *usecase.AuthUsecase
}

func NewAdminHandler(auth *usecase.AuthUsecase) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// ListUsers returns every user as a JSON array; password hashes are
// stripped before serialization.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.auth.ListPublic())
}
