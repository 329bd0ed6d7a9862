package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/adapters/primary/http/dto"
	"ml-platform/internal/core/domain"
)

func (h *Handler) CreateExperiment(c *gin.Context) {
	var req dto.CreateExperimentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		mapDomainError(c, domain.ErrProjectNotFound)
		return
	}

	experiment, err := h.experimentSvc.Create(c.Request.Context(), req.Name, req.Algorithm, req.Dataset, projectID, req.Hyperparameters)
	if err != nil {
		log.WithError(err).WithField("project_id", projectID).Error("create experiment failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateExperimentResponse{
		Success:        true,
		Message:        "Experiment created successfully",
		ExperimentID:   experiment.ID,
		ExperimentName: experiment.Name,
	})
}

func (h *Handler) ListExperiments(c *gin.Context) {
	var experiments []*domain.Experiment
	if raw := c.Query("project_id"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			mapDomainError(c, domain.ErrProjectNotFound)
			return
		}
		experiments = h.experimentSvc.ListByProject(c.Request.Context(), projectID)
	} else {
		experiments = h.experimentSvc.List(c.Request.Context())
	}

	items := make([]dto.ExperimentResponse, 0, len(experiments))
	for _, e := range experiments {
		items = append(items, dto.ToExperimentResponse(e))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

func (h *Handler) GetExperiment(c *gin.Context) {
	id, err := parseID(c, domain.ErrExperimentNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	experiment, err := h.experimentSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperimentResponse(experiment))
}

func (h *Handler) StartExperiment(c *gin.Context) {
	id, err := parseID(c, domain.ErrExperimentNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	experiment, metrics, err := h.experimentSvc.Start(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StartExperimentResponse{
		Success:      true,
		Message:      "Experiment completed successfully",
		ExperimentID: experiment.ID,
		Status:       experiment.Status,
		Metrics:      metrics,
	})
}

func (h *Handler) GetExperimentMetrics(c *gin.Context) {
	id, err := parseID(c, domain.ErrExperimentNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	experiment, err := h.experimentSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExperimentMetricsResponse{
		ExperimentID: experiment.ID,
		Status:       experiment.Status,
		Metrics:      experiment.Metrics,
	})
}
