package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	batchWorkers int
	maxBatchSize int
}

func NewHTTPHandler(
	batchWorkers int,
	maxBatchSize int,
) *HttpEndpoints {
	return &HttpEndpoints{
		batchWorkers: batchWorkers,
		maxBatchSize: maxBatchSize,
	}
}

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluate", h.evaluate)
	rg.POST("/evaluate-batch", h.evaluateBatch)
}
