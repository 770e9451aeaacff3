package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

type ReflectionController struct {
	ReflectionService service.ReflectionService
}

func NewReflectionController(reflectionService service.ReflectionService) *ReflectionController {
	return &ReflectionController{ReflectionService: reflectionService}
}

// Generate handles POST /api/reflection.
func (rc *ReflectionController) Generate(c *gin.Context) {
	var req service.ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	reflection, err := rc.ReflectionService.Generate(c.Request.Context(), req)
	if err != nil {
		utilities.Error("error generating reflection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reflection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflection": reflection})
}
