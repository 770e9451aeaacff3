package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

type ProblemController struct {
	ProblemService service.ProblemService
}

func NewProblemController(problemService service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

type problemRequest struct {
	Topic      string `json:"topic"`
	TopicID    uint   `json:"topicId"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// Generate handles POST /api/problems.
func (pc *ProblemController) Generate(c *gin.Context) {
	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	result, err := pc.ProblemService.GetOrGenerate(c.Request.Context(), req.Topic, req.TopicID, req.Difficulty, req.Count)
	if err != nil {
		utilities.Error("error generating problems: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate problems"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"problems": result.Problems,
		"cached":   result.Cached,
	})
}
