package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
)

func TestFoldStats(t *testing.T) {
	rows := []model.UserProgress{
		{XPEarned: 100, ProblemsSolved: 6, ProblemsCorrect: 4, ConceptsCompleted: 3, StreakDays: 2},
		{XPEarned: 50, ProblemsSolved: 4, ProblemsCorrect: 3, ConceptsCompleted: 1, StreakDays: 5},
	}

	stats := FoldStats(rows)

	assert.Equal(t, 150, stats.TotalXP)
	assert.Equal(t, 10, stats.TotalProblems)
	assert.Equal(t, 7, stats.TotalCorrect)
	assert.Equal(t, 70, stats.Accuracy)
	assert.Equal(t, 4, stats.ConceptsLearned)
	assert.Equal(t, 5, stats.Streak, "streak is the max across topics, not the sum")
	assert.Equal(t, 2, stats.TopicsStudied)
}

func TestFoldStatsNoProblemsSolved(t *testing.T) {
	stats := FoldStats([]model.UserProgress{
		{XPEarned: 20, ConceptsCompleted: 2},
	})

	assert.Equal(t, 0, stats.Accuracy, "accuracy must be 0, not a division error")
	assert.Equal(t, 1, stats.TopicsStudied)
}

func TestFoldStatsEmpty(t *testing.T) {
	stats := FoldStats(nil)

	assert.Zero(t, stats.TotalXP)
	assert.Zero(t, stats.Accuracy)
	assert.Zero(t, stats.TopicsStudied)
}

func TestFoldStatsRoundsToNearestPercent(t *testing.T) {
	stats := FoldStats([]model.UserProgress{
		{ProblemsSolved: 3, ProblemsCorrect: 2},
	})
	assert.Equal(t, 67, stats.Accuracy)
}

func TestRecordProgressTwiceAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db))

	delta := model.ProgressDelta{ConceptsCompleted: 1, XPEarned: 10}

	_, err := svc.RecordProgress("user-1", 4, delta)
	require.NoError(t, err)
	row, err := svc.RecordProgress("user-1", 4, delta)
	require.NoError(t, err)

	assert.Equal(t, 2, row.ConceptsCompleted)
	assert.Equal(t, 20, row.XPEarned)

	rows, stats, err := svc.GetProgress("user-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 20, stats.TotalXP)
	assert.Equal(t, 2, stats.ConceptsLearned)
}
