package handler

import (
	"net/http"

	"hospital-booking-service/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

// Check handles GET /health. Reports per-dependency status; degraded
// dependencies yield 503 so load balancers stop routing here.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		status["database"] = "unreachable"
		healthy = false
	}

	if err := h.redisClient.Ping(r.Context()).Err(); err != nil {
		status["redis"] = "unreachable"
		healthy = false
	}

	if !healthy {
		response.JSON(w, http.StatusServiceUnavailable, response.Response{
			Success: false,
			Message: "Service degraded",
			Data:    status,
		})
		return
	}

	response.Success(w, http.StatusOK, "Service healthy", status)
}
