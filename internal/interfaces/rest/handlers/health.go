package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/interfaces/rest"
)

// HandleHealth reports liveness.
//
//	@Summary	Liveness check
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	api.HealthResponse
//	@Router		/health [get]
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.ToAPIHealth(h.now()))
}

func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Route not found"})
}
