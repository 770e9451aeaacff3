package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/model"
	"learnloop-backend/internal/service"
	"learnloop-backend/utilities"
)

type ProgressController struct {
	ProgressService service.ProgressService
	ReportService   service.ReportService
}

func NewProgressController(progressService service.ProgressService, reportService service.ReportService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		ReportService:   reportService,
	}
}

// resolveUserID prefers the explicit query param, then the session identity
// set by the middleware, then the anonymous default.
func resolveUserID(c *gin.Context) string {
	if userID := c.Query("userId"); userID != "" {
		return userID
	}
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return "anonymous"
}

// Get handles GET /api/progress.
func (pc *ProgressController) Get(c *gin.Context) {
	userID := resolveUserID(c)

	rows, stats, err := pc.ProgressService.GetProgress(userID)
	if err != nil {
		utilities.Error("error fetching progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}
	if rows == nil {
		rows = []model.UserProgress{}
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": rows,
		"stats":    stats,
	})
}

type progressPostRequest struct {
	UserID            string `json:"userId"`
	TopicID           uint   `json:"topicId"`
	ConceptsCompleted int    `json:"conceptsCompleted"`
	ProblemsSolved    int    `json:"problemsSolved"`
	ProblemsCorrect   int    `json:"problemsCorrect"`
	XPEarned          int    `json:"xpEarned"`
}

// Post handles POST /api/progress. Increments are additive; posting the same
// delta twice doubles the counters.
func (pc *ProgressController) Post(c *gin.Context) {
	var req progressPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.TopicID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic ID is required"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	row, err := pc.ProgressService.RecordProgress(userID, req.TopicID, model.ProgressDelta{
		ConceptsCompleted: req.ConceptsCompleted,
		ProblemsSolved:    req.ProblemsSolved,
		ProblemsCorrect:   req.ProblemsCorrect,
		XPEarned:          req.XPEarned,
	})
	if err != nil {
		utilities.Error("error updating progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": row})
}

// DownloadReport handles GET /api/progress/report.
func (pc *ProgressController) DownloadReport(c *gin.Context) {
	userID := resolveUserID(c)

	path, err := pc.ReportService.GenerateProgressReport(userID)
	if err != nil {
		utilities.Error("error generating progress report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.FileAttachment(path, "progress_report.pdf")
}
