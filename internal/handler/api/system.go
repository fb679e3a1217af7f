package api

import (
	"runtime"
	"time"

	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SystemHandler backs the dashboard's gateway-health panel: uptime, Go
// runtime stats and the recent aggregated error logs from the collector.
type SystemHandler struct {
	logger  *xlogger.Logger
	started time.Time
}

func NewSystemHandler(logger *xlogger.Logger) *SystemHandler {
	return &SystemHandler{logger: logger, started: time.Now()}
}

func (h *SystemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/system/metrics", h.Metrics)
	e.GET("/api/system/health", h.Health)
}

type systemMetrics struct {
	UptimeSeconds float64                      `json:"uptimeSeconds"`
	Goroutines    int                          `json:"goroutines"`
	HeapAllocMB   float64                      `json:"heapAllocMb"`
	NumGC         uint32                       `json:"numGc"`
	RecentErrors  []xlogger.AggregatedLogEntry `json:"recentErrors"`
}

func (h *SystemHandler) Metrics(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	out := systemMetrics{
		UptimeSeconds: time.Since(h.started).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(mem.HeapAlloc) / (1 << 20),
		NumGC:         mem.NumGC,
	}
	if collector := h.logger.Collector(); collector != nil {
		out.RecentErrors = collector.Snapshot()
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *SystemHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
