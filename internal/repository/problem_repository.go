package repository

import (
	"gorm.io/gorm"

	"learnloop-backend/internal/model"
)

type ProblemRepository interface {
	GetByTopicAndDifficulty(topicID uint, difficulty string, limit int) ([]model.Problem, error)
	CreateBatch(problems []model.Problem) error
}

type problemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) GetByTopicAndDifficulty(topicID uint, difficulty string, limit int) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.db.
		Where("topic_id = ? AND difficulty = ?", topicID, difficulty).
		Limit(limit).
		Find(&problems).Error
	return problems, err
}

func (r *problemRepository) CreateBatch(problems []model.Problem) error {
	return r.db.Create(&problems).Error
}
