package handlers

import (
	"context"
	"net/http"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/demo"

	"github.com/gin-gonic/gin"
)

// DemoHandler controls the synthetic-traffic simulator used for demos.
//
// The simulator is started on baseCtx, not the request context, so it keeps
// running after the start request completes.
type DemoHandler struct {
	simulator *demo.Simulator
	baseCtx   context.Context
}

func NewDemoHandler(simulator *demo.Simulator, baseCtx context.Context) *DemoHandler {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &DemoHandler{simulator: simulator, baseCtx: baseCtx}
}

func (h *DemoHandler) Start(c *gin.Context) {
	started := h.simulator.Start(h.baseCtx)
	c.JSON(http.StatusOK, gin.H{"running": true, "started": started})
}

func (h *DemoHandler) Stop(c *gin.Context) {
	stopped := h.simulator.Stop()
	c.JSON(http.StatusOK, gin.H{"running": false, "stopped": stopped})
}

func (h *DemoHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": h.simulator.Running()})
}
