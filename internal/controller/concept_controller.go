package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

type ConceptController struct {
	ConceptService service.ConceptService
}

func NewConceptController(conceptService service.ConceptService) *ConceptController {
	return &ConceptController{ConceptService: conceptService}
}

type conceptRequest struct {
	Topic  string `json:"topic"`
	UserID string `json:"userId"`
}

// Generate handles POST /api/concepts.
func (cc *ConceptController) Generate(c *gin.Context) {
	var req conceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	result, err := cc.ConceptService.GetOrGenerate(c.Request.Context(), req.Topic, req.UserID)
	if err != nil {
		utilities.Error("error generating concepts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate concepts"})
		return
	}

	resp := gin.H{
		"topic":    result.Topic,
		"concepts": result.Concepts,
		"cached":   result.Cached,
	}
	if result.BatchID != "" {
		resp["batchId"] = result.BatchID
	}
	c.JSON(http.StatusOK, resp)
}
