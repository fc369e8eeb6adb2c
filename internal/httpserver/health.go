package httpserver

import (
	"net/http"

	"time-calculator/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "time-calculator"
	ServiceVersion = "1.0.0"
)

// probeResp is the body of the probe endpoints.
type probeResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
	// Submitting is set while a calculation request is in flight.
	Submitting bool `json:"submitting,omitempty"`
}

func (srv HTTPServer) probe(status string) probeResp {
	return probeResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck reports ready once the form session is wired, and whether it is mid-submission.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Form session missing"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.formUC == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{ErrorCode: http.StatusServiceUnavailable, Message: "not ready"})
		return
	}
	p := srv.probe("ready")
	p.Submitting = srv.formUC.View(c.Request.Context()).Submit.Busy
	response.OK(c, p)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
