package routes

import (
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
	PathDemo        = "/demo"
)

func addIntakeRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler) {
	rg.POST(PathSubmissions, submissionHandler.IngestSubmission)
}

func addDemoRoutes(rg *gin.RouterGroup, demoHandler *handlers.DemoHandler) {
	demo := rg.Group(PathDemo)
	{
		demo.POST("/start", demoHandler.Start)
		demo.POST("/stop", demoHandler.Stop)
		demo.GET("/status", demoHandler.Status)
	}
}
