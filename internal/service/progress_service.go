package service

import (
	"math"

	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
)

// ProgressStats is the dashboard summary folded from a user's progress rows.
type ProgressStats struct {
	TotalXP         int `json:"totalXp"`
	TotalProblems   int `json:"totalProblems"`
	TotalCorrect    int `json:"totalCorrect"`
	Accuracy        int `json:"accuracy"` // whole percent, 0 when no problems solved
	ConceptsLearned int `json:"conceptsLearned"`
	Streak          int `json:"streak"`
	TopicsStudied   int `json:"topicsStudied"`
}

type ProgressService interface {
	GetProgress(userID string) ([]model.UserProgress, *ProgressStats, error)
	RecordProgress(userID string, topicID uint, delta model.ProgressDelta) (*model.UserProgress, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) GetProgress(userID string) ([]model.UserProgress, *ProgressStats, error) {
	rows, err := s.progressRepo.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return rows, FoldStats(rows), nil
}

// FoldStats sums the per-topic counters into dashboard totals. Streak is the
// max across topics, not a sum.
func FoldStats(rows []model.UserProgress) *ProgressStats {
	stats := &ProgressStats{TopicsStudied: len(rows)}
	for _, row := range rows {
		stats.TotalXP += row.XPEarned
		stats.TotalProblems += row.ProblemsSolved
		stats.TotalCorrect += row.ProblemsCorrect
		stats.ConceptsLearned += row.ConceptsCompleted
		if row.StreakDays > stats.Streak {
			stats.Streak = row.StreakDays
		}
	}
	if stats.TotalProblems > 0 {
		stats.Accuracy = int(math.Round(float64(stats.TotalCorrect) / float64(stats.TotalProblems) * 100))
	}
	return stats
}

func (s *progressService) RecordProgress(userID string, topicID uint, delta model.ProgressDelta) (*model.UserProgress, error) {
	return s.progressRepo.ApplyDelta(userID, topicID, delta)
}
