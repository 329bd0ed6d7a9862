package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/core/domain"
)

func errorStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrExperimentNotFound),
		errors.Is(err, domain.ErrModelNotFound):
		return http.StatusNotFound

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidProjectName),
		errors.Is(err, domain.ErrInvalidExperimentName),
		errors.Is(err, domain.ErrInvalidExperimentStatus),
		errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrExperimentNotCompleted):
		return http.StatusBadRequest

	// Upstream errors
	case errors.Is(err, domain.ErrDeploymentFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func renderDomainError(c *gin.Context, err error) {
	status := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
		msg = "internal server error"
	}
	c.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": msg,
	})
}
