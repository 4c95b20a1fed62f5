package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/config"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

type Handler struct {
	cfg *config.Config
	db  *database.DB
}

func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

type HealthResponse struct {
	Status  string       `json:"status"` // healthy | unhealthy
	Service ServiceInfo  `json:"service"`
	Checks  HealthChecks `json:"checks"`
}

type ServiceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
}

type HealthChecks struct {
	Database DatabaseCheck `json:"database"`
}

type DatabaseCheck struct {
	Driver    string     `json:"driver"`
	Status    string     `json:"status"` // up | down
	LatencyMs int64      `json:"latency_ms"`
	Error     string     `json:"error,omitempty"`
	Pool      *PoolStats `json:"pool,omitempty"`
}

// PoolStats is a subset of sql.DBStats
type PoolStats struct {
	MaxOpen   int   `json:"max_open"`
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
}

// Health pings the database; 503 when it is unreachable
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "healthy",
		Service: ServiceInfo{
			Name:        h.cfg.App.Name,
			Environment: h.cfg.App.Env,
		},
	}

	check := DatabaseCheck{Driver: h.cfg.Database.Driver, Status: "up"}
	start := time.Now()
	err := h.db.HealthCheck(ctx)
	check.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Health check 실패", "driver", check.Driver, "error", err)
		check.Status = "down"
		check.Error = err.Error()
		response.Status = "unhealthy"
	} else if stats, statsErr := h.db.Stats(); statsErr == nil {
		check.Pool = &PoolStats{
			MaxOpen:   stats.MaxOpenConnections,
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			WaitCount: stats.WaitCount,
		}
	}

	response.Checks.Database = check

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
