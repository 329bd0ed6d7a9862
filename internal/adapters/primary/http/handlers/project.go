package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/adapters/primary/http/dto"
	"ml-platform/internal/core/domain"
)

func (h *Handler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), req.Name, req.Description, req.Tags)
	if err != nil {
		log.WithError(err).Error("create project failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateProjectResponse{
		Success:     true,
		Message:     "Project created successfully",
		ProjectID:   project.ID,
		ProjectName: project.Name,
	})
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects := h.projectSvc.List(c.Request.Context())

	items := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, dto.ToProjectResponse(p))
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

func (h *Handler) GetProject(c *gin.Context) {
	id, err := parseID(c, domain.ErrProjectNotFound)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}
