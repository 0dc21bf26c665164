package handler

import (
	"context"
	"time"

	"linktern/internal/database"
	"linktern/internal/infrastructure/cache"
	"linktern/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "down"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	// The cache degrades to a no-op when unreachable, so it never fails
	// the health check.
	redisStatus := "ok"
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		redisStatus = "unavailable"
	}

	data := map[string]any{
		"database": dbStatus,
		"redis":    redisStatus,
	}

	if dbStatus != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
