package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnloop-backend/internal/model"
)

type ProgressRepository interface {
	GetByUser(userID string) ([]model.UserProgress, error)
	ApplyDelta(userID string, topicID uint, delta model.ProgressDelta) (*model.UserProgress, error)
	SeedRow(userID string, topicID uint) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetByUser(userID string) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.db.Where("user_id = ?", userID).Preload("Topic").Find(&rows).Error
	return rows, err
}

// ApplyDelta folds the increments into the (user, topic) row with a single
// upsert using server-side arithmetic, so two concurrent posts for the same
// pair cannot lose an update.
func (r *progressRepository) ApplyDelta(userID string, topicID uint, delta model.ProgressDelta) (*model.UserProgress, error) {
	now := time.Now()
	row := model.UserProgress{
		UserID:            userID,
		TopicID:           topicID,
		ConceptsCompleted: delta.ConceptsCompleted,
		ProblemsSolved:    delta.ProblemsSolved,
		ProblemsCorrect:   delta.ProblemsCorrect,
		XPEarned:          delta.XPEarned,
		LastActivity:      now,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"concepts_completed": gorm.Expr("user_progress.concepts_completed + ?", delta.ConceptsCompleted),
			"problems_solved":    gorm.Expr("user_progress.problems_solved + ?", delta.ProblemsSolved),
			"problems_correct":   gorm.Expr("user_progress.problems_correct + ?", delta.ProblemsCorrect),
			"xp_earned":          gorm.Expr("user_progress.xp_earned + ?", delta.XPEarned),
			"last_activity":      now,
			"updated_at":         now,
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var updated model.UserProgress
	err = r.db.
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Preload("Topic").
		First(&updated).Error
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SeedRow creates a zero-counter row for the pair if none exists, so freshly
// generated topics show up on the dashboard immediately.
func (r *progressRepository) SeedRow(userID string, topicID uint) error {
	row := model.UserProgress{
		UserID:       userID,
		TopicID:      topicID,
		LastActivity: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoNothing: true,
	}).Create(&row).Error
}
