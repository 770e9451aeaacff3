package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"learnloop-backend/utilities"
)

type ReportService interface {
	// GenerateProgressReport renders the user's dashboard stats into a PDF
	// and returns the file path.
	GenerateProgressReport(userID string) (string, error)
}

type reportService struct {
	progressService ProgressService
	outputDir       string
}

func NewReportService(progressService ProgressService, outputDir string) ReportService {
	return &reportService{
		progressService: progressService,
		outputDir:       outputDir,
	}
}

// InitReportEventListeners pre-renders a user's report whenever one of their
// sessions completes, so the download endpoint usually serves warm output.
func InitReportEventListeners(reportService ReportService) {
	utilities.GlobalEventBus.Subscribe(EventSessionCompleted, func(data interface{}) {
		userID, ok := data.(string)
		if !ok {
			utilities.Warn("invalid user id received for report generation")
			return
		}
		if _, err := reportService.GenerateProgressReport(userID); err != nil {
			utilities.Error("failed to pre-render progress report for %s: %v", userID, err)
		}
	})
}

func (s *reportService) GenerateProgressReport(userID string) (string, error) {
	rows, stats, err := s.progressService.GetProgress(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch progress: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Learning Progress Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, fmt.Sprintf("User: %s", userID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Overview")
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 11)
	overview := []string{
		fmt.Sprintf("Total XP: %d", stats.TotalXP),
		fmt.Sprintf("Concepts learned: %d", stats.ConceptsLearned),
		fmt.Sprintf("Problems solved: %d (%d correct, %d%% accuracy)", stats.TotalProblems, stats.TotalCorrect, stats.Accuracy),
		fmt.Sprintf("Best streak: %d days", stats.Streak),
		fmt.Sprintf("Topics studied: %d", stats.TopicsStudied),
	}
	for _, line := range overview {
		pdf.Cell(40, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "By Topic")
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	headers := []struct {
		label string
		width float64
	}{
		{"Topic", 60},
		{"Concepts", 25},
		{"Solved", 25},
		{"Correct", 25},
		{"XP", 25},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		topicName := fmt.Sprintf("#%d", row.TopicID)
		if row.Topic != nil {
			topicName = row.Topic.Name
		}
		pdf.CellFormat(60, 7, topicName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.ConceptsCompleted), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.ProblemsSolved), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.ProblemsCorrect), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.XPEarned), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("progress_%s.pdf", userID))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}
	return outputPath, nil
}
