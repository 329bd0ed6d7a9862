package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ml-platform/internal/core/services"
)

type Handler struct {
	projectSvc    *services.ProjectService
	experimentSvc *services.ExperimentService
	modelSvc      *services.ModelService
	statsSvc      *services.StatsService
}

func New(
	projectSvc *services.ProjectService,
	experimentSvc *services.ExperimentService,
	modelSvc *services.ModelService,
	statsSvc *services.StatsService,
) *Handler {
	return &Handler{
		projectSvc:    projectSvc,
		experimentSvc: experimentSvc,
		modelSvc:      modelSvc,
		statsSvc:      statsSvc,
	}
}

// RegisterRoutes mounts the JSON API under r.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Projects
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/projects", h.CreateProject)

	// Experiments
	r.GET("/experiments", h.ListExperiments)
	r.GET("/experiments/:id", h.GetExperiment)
	r.POST("/experiments", h.CreateExperiment)
	r.POST("/experiments/:id/start", h.StartExperiment)
	r.GET("/experiments/:id/metrics", h.GetExperimentMetrics)

	// Trained models
	r.POST("/experiments/:id/models", h.RegisterModel)
	r.GET("/models", h.ListModels)
	r.GET("/models/:id", h.GetModel)
	r.POST("/models/:id/deploy", h.DeployModel)
	r.DELETE("/models/:id/deploy", h.UndeployModel)
	r.GET("/models/:id/status", h.GetModelServingStatus)

	// Stats
	r.GET("/stats", h.GetStats)
	r.GET("/stats/chart", h.GetChartData)
}

// RegisterPages mounts the server-rendered HTML pages.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.DashboardPage)
	r.GET("/project/create", h.CreateProjectPage)
	r.GET("/experiment/create", h.CreateExperimentPage)
	r.GET("/visualization", h.VisualizationPage)
	r.GET("/project/:id", h.ProjectPage)
	r.GET("/experiment/:id", h.ExperimentPage)
}

// parseID reads the :id path parameter. A malformed id cannot match any
// entity, so callers report it as notFound.
func parseID(c *gin.Context, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
