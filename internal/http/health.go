package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/database"
)

// HealthResponse reports service liveness and the state of the sqlite
// store, the only external dependency this server has.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
	Version  string `json:"version,omitempty"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Status answers 200 while the sqlite handle pings, 503 once it stops.
func (h *HealthController) Status(c *gin.Context) {
	health := HealthResponse{
		Status:   "healthy",
		Database: "ok",
		Time:     time.Now().Format(time.RFC3339),
		Version:  h.version,
	}

	statusCode := http.StatusOK
	if err := h.pingDatabase(); err != nil {
		health.Status = "unhealthy"
		health.Database = "error: " + err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func (h *HealthController) pingDatabase() error {
	if h.db == nil {
		return errors.New("not configured")
	}
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
