package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/adapters/primary/http/dto"
	"ml-platform/internal/core/domain"
)

func (h *Handler) RegisterModel(c *gin.Context) {
	experimentID, err := parseID(c, domain.ErrExperimentNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.RegisterModelRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := h.modelSvc.Register(c.Request.Context(), experimentID, req.Name, req.Description)
	if err != nil {
		log.WithError(err).WithField("experiment_id", experimentID).Error("register model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainedModelResponse(model))
}

func (h *Handler) ListModels(c *gin.Context) {
	models := h.modelSvc.List(c.Request.Context())

	items := make([]dto.TrainedModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ToTrainedModelResponse(m))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

func (h *Handler) GetModel(c *gin.Context) {
	id, err := parseID(c, domain.ErrModelNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	model, err := h.modelSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainedModelResponse(model))
}

func (h *Handler) DeployModel(c *gin.Context) {
	id, err := parseID(c, domain.ErrModelNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	model, err := h.modelSvc.Deploy(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainedModelResponse(model))
}

func (h *Handler) UndeployModel(c *gin.Context) {
	id, err := parseID(c, domain.ErrModelNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	model, err := h.modelSvc.Undeploy(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainedModelResponse(model))
}

func (h *Handler) GetModelServingStatus(c *gin.Context) {
	id, err := parseID(c, domain.ErrModelNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	status, err := h.modelSvc.ServingStatus(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModelStatusResponse{ModelID: id, KServeStatus: *status})
}
