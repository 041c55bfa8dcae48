package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"

	"ridefeedback/internal/services"
	"ridefeedback/internal/utils"
	"ridefeedback/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type HealthHandler struct {
	ratingService services.RatingService
	log           *logger.Logger
}

func NewHealthHandler(ratingService services.RatingService, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		ratingService: ratingService,
		log:           log,
	}
}

// Check handles GET /health. A connectivity fault maps to 503 so probes can
// tell an unreachable store apart from an unexpected failure (500).
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.ratingService.HealthCheck(c.Request.Context()); err != nil {
		status := http.StatusInternalServerError
		if isConnectivityError(err) {
			status = http.StatusServiceUnavailable
		}
		h.log.WithError(err).Error("Health check failed: database error")
		c.JSON(status, gin.H{
			"status":   utils.StatusError,
			"database": utils.DatabaseUnhealthy,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": utils.DatabaseOK,
	})
}

func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
