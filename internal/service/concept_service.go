package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"learnloop-backend/internal/llm"
	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
	"learnloop-backend/utilities"
)

// ConceptResult is the outcome of a concepts request, cached or generated.
type ConceptResult struct {
	Topic    *model.Topic
	Concepts []model.Concept
	Cached   bool
	BatchID  string // set only on fresh generation
}

type ConceptService interface {
	GetOrGenerate(ctx context.Context, topic, userID string) (*ConceptResult, error)
}

type conceptService struct {
	topicRepo    repository.TopicRepository
	progressRepo repository.ProgressRepository
	generator    *llm.Generator
}

func NewConceptService(topicRepo repository.TopicRepository, progressRepo repository.ProgressRepository, generator *llm.Generator) ConceptService {
	return &conceptService{
		topicRepo:    topicRepo,
		progressRepo: progressRepo,
		generator:    generator,
	}
}

// GetOrGenerate returns the stored concepts for a topic when any exist,
// otherwise generates a fresh module, persists it, and returns it. The gate is
// best-effort de-duplication, not a lock: two concurrent misses may both
// generate, and the unique topic name makes them converge on one Topic row.
func (s *conceptService) GetOrGenerate(ctx context.Context, topic, userID string) (*ConceptResult, error) {
	existing, err := s.topicRepo.GetConceptsByTopicName(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to check stored concepts: %w", err)
	}
	if len(existing) > 0 {
		return &ConceptResult{
			Topic:    existing[0].Topic,
			Concepts: existing,
			Cached:   true,
		}, nil
	}

	batchID := uuid.New().String()
	utilities.Info("generating concepts for topic %q (batch %s)", topic, batchID)

	module, err := s.generator.GenerateConceptModule(ctx, topic)
	if err != nil {
		return nil, err
	}

	topicRow := &model.Topic{
		Name:        module.TopicName,
		Category:    module.Category,
		Description: module.Description,
	}
	if err := s.topicRepo.UpsertTopic(topicRow); err != nil {
		return nil, fmt.Errorf("failed to store topic: %w", err)
	}

	concepts := make([]model.Concept, 0, len(module.Concepts))
	for i, c := range module.Concepts {
		orderIndex := i
		if c.OrderIndex != nil {
			orderIndex = *c.OrderIndex
		}
		concepts = append(concepts, model.Concept{
			TopicID:    topicRow.ID,
			Title:      c.Title,
			Content:    c.Content,
			Difficulty: c.Difficulty,
			OrderIndex: orderIndex,
		})
	}
	if err := s.topicRepo.CreateConcepts(concepts); err != nil {
		return nil, fmt.Errorf("failed to store concepts: %w", err)
	}

	if userID != "" {
		if err := s.progressRepo.SeedRow(userID, topicRow.ID); err != nil {
			// The generated content is already persisted; a failed seed only
			// delays the topic's first dashboard appearance.
			utilities.Warn("failed to seed progress row for user %s topic %d: %v", userID, topicRow.ID, err)
		}
	}

	return &ConceptResult{
		Topic:    topicRow,
		Concepts: concepts,
		BatchID:  batchID,
	}, nil
}
