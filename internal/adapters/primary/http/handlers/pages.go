package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ml-platform/internal/core/domain"
)

const dashboardExperiments = 10

func (h *Handler) DashboardPage(c *gin.Context) {
	ctx := c.Request.Context()

	experiments := h.experimentSvc.List(ctx)
	if len(experiments) > dashboardExperiments {
		experiments = experiments[len(experiments)-dashboardExperiments:]
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":       "Dashboard",
		"Stats":       h.statsSvc.Stats(ctx),
		"Projects":    h.projectSvc.List(ctx),
		"Experiments": experiments,
		"Models":      h.modelSvc.List(ctx),
		"CurrentTime": time.Now().Format("15:04"),
	})
}

func (h *Handler) CreateProjectPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_project.html", gin.H{
		"Title": "New project",
	})
}

func (h *Handler) CreateExperimentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_experiment.html", gin.H{
		"Title":    "New experiment",
		"Projects": h.projectSvc.List(c.Request.Context()),
	})
}

func (h *Handler) VisualizationPage(c *gin.Context) {
	ctx := c.Request.Context()
	c.HTML(http.StatusOK, "visualization.html", gin.H{
		"Title":       "Visualization",
		"Experiments": h.experimentSvc.List(ctx),
		"ChartData":   h.statsSvc.ChartData(ctx),
	})
}

func (h *Handler) ProjectPage(c *gin.Context) {
	id, err := parseID(c, domain.ErrProjectNotFound)
	if err != nil {
		renderDomainError(c, err)
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context(), id)
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"Title":       project.Name,
		"Project":     project,
		"Experiments": h.experimentSvc.ListByProject(c.Request.Context(), project.ID),
	})
}

func (h *Handler) ExperimentPage(c *gin.Context) {
	id, err := parseID(c, domain.ErrExperimentNotFound)
	if err != nil {
		renderDomainError(c, err)
		return
	}

	experiment, err := h.experimentSvc.Get(c.Request.Context(), id)
	if err != nil {
		renderDomainError(c, err)
		return
	}

	// The owning project always exists; a lookup failure only drops the link.
	project, _ := h.projectSvc.Get(c.Request.Context(), experiment.ProjectID)

	c.HTML(http.StatusOK, "experiment_detail.html", gin.H{
		"Title":      experiment.Name,
		"Experiment": experiment,
		"Project":    project,
	})
}
