package rest

import (
	"net/http"

	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
)

type HealthHandler struct {
	svc *service.Health
}

func NewHealthHandler(svc *service.Health) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	rep := h.svc.Check(r.Context())

	status := http.StatusOK
	if rep.Error {
		status = http.StatusInternalServerError
	}
	response.JSON(w, status, rep)
}
