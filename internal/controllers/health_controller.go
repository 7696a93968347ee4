package controllers

import (
	"context"
	"net/http"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.db.Ping(r.Context()); err != nil {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dtos.HealthCheckResponse{Status: "unhealthy"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "healthy"})
}
