package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnloop-backend/internal/model"
)

func TestApplyDeltaIsAdditive(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	delta := model.ProgressDelta{ConceptsCompleted: 1, XPEarned: 10}

	row, err := repo.ApplyDelta("user-1", 7, delta)
	require.NoError(t, err)
	assert.Equal(t, 1, row.ConceptsCompleted)
	assert.Equal(t, 10, row.XPEarned)

	row, err = repo.ApplyDelta("user-1", 7, delta)
	require.NoError(t, err)
	assert.Equal(t, 2, row.ConceptsCompleted)
	assert.Equal(t, 20, row.XPEarned)
	assert.False(t, row.LastActivity.IsZero())

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyDeltaSeparatePairs(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	_, err := repo.ApplyDelta("user-1", 1, model.ProgressDelta{ProblemsSolved: 3, ProblemsCorrect: 2})
	require.NoError(t, err)
	_, err = repo.ApplyDelta("user-2", 1, model.ProgressDelta{ProblemsSolved: 5})
	require.NoError(t, err)
	_, err = repo.ApplyDelta("user-1", 2, model.ProgressDelta{ProblemsSolved: 1})
	require.NoError(t, err)

	rows, err := repo.GetByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.GetByUser("user-2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].ProblemsSolved)
}

func TestSeedRowDoesNotResetCounters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	_, err := repo.ApplyDelta("user-1", 3, model.ProgressDelta{XPEarned: 40})
	require.NoError(t, err)

	require.NoError(t, repo.SeedRow("user-1", 3))

	rows, err := repo.GetByUser("user-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 40, rows[0].XPEarned)
}

func TestGetByUserPreloadsTopic(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	topic := model.Topic{Name: "Graphs", Category: model.CategoryComputerScience}
	require.NoError(t, db.Create(&topic).Error)

	_, err := repo.ApplyDelta("user-1", topic.ID, model.ProgressDelta{ConceptsCompleted: 1})
	require.NoError(t, err)

	rows, err := repo.GetByUser("user-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Topic)
	assert.Equal(t, "Graphs", rows[0].Topic.Name)
}
