package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnloop-backend/internal/model"
)

type TopicRepository interface {
	UpsertTopic(topic *model.Topic) error
	CreateConcepts(concepts []model.Concept) error
	GetConceptsByTopicName(name string) ([]model.Concept, error)
	GetTopicByID(id uint) (*model.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

// UpsertTopic inserts a topic or, when another request already created one
// with the same name, refreshes it and loads the surviving row's id. Keeps
// concurrent cache misses from leaving duplicate topics behind.
func (r *topicRepository) UpsertTopic(topic *model.Topic) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "description"}),
	}).Create(topic).Error
}

func (r *topicRepository) CreateConcepts(concepts []model.Concept) error {
	return r.db.Create(&concepts).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetConceptsByTopicName matches topics case-insensitively by substring and
// returns their concepts in display order. LIKE metacharacters in the name
// are matched literally.
func (r *topicRepository) GetConceptsByTopicName(name string) ([]model.Concept, error) {
	var concepts []model.Concept
	err := r.db.
		Joins("JOIN topics ON topics.id = concepts.topic_id").
		Where(`LOWER(topics.name) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(name)+"%").
		Order("concepts.order_index").
		Preload("Topic").
		Find(&concepts).Error
	return concepts, err
}

func (r *topicRepository) GetTopicByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}
