package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsSvc.Stats(c.Request.Context()))
}

func (h *Handler) GetChartData(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsSvc.ChartData(c.Request.Context()))
}
