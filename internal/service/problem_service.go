package service

import (
	"context"
	"fmt"

	"learnloop-backend/internal/llm"
	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
	"learnloop-backend/utilities"
)

const (
	defaultProblemCount      = 5
	defaultProblemDifficulty = "medium"
)

// ProblemResult is the outcome of a problems request.
type ProblemResult struct {
	Problems []model.Problem
	Cached   bool
}

type ProblemService interface {
	GetOrGenerate(ctx context.Context, topic string, topicID uint, difficulty string, count int) (*ProblemResult, error)
}

type problemService struct {
	problemRepo repository.ProblemRepository
	generator   *llm.Generator
}

func NewProblemService(problemRepo repository.ProblemRepository, generator *llm.Generator) ProblemService {
	return &problemService{
		problemRepo: problemRepo,
		generator:   generator,
	}
}

// GetOrGenerate serves stored problems when the topic already has enough at
// the requested difficulty, otherwise generates a fresh batch. Without a topic
// id the batch is a preview: generated, returned, never persisted.
func (s *problemService) GetOrGenerate(ctx context.Context, topic string, topicID uint, difficulty string, count int) (*ProblemResult, error) {
	if difficulty == "" {
		difficulty = defaultProblemDifficulty
	}
	if count <= 0 {
		count = defaultProblemCount
	}

	if topicID != 0 {
		existing, err := s.problemRepo.GetByTopicAndDifficulty(topicID, difficulty, count)
		if err != nil {
			return nil, fmt.Errorf("failed to check stored problems: %w", err)
		}
		if len(existing) >= count {
			return &ProblemResult{Problems: existing, Cached: true}, nil
		}
	}

	utilities.Info("generating %d %s problems for topic %q", count, difficulty, topic)

	generated, err := s.generator.GenerateProblems(ctx, topic, difficulty, count)
	if err != nil {
		return nil, err
	}

	problems := make([]model.Problem, 0, len(generated))
	for _, p := range generated {
		problems = append(problems, model.Problem{
			TopicID:       topicID,
			Question:      p.Question,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
			Hint:          p.Hint,
			Explanation:   p.Explanation,
			Difficulty:    p.Difficulty,
		})
	}

	if topicID != 0 {
		if err := s.problemRepo.CreateBatch(problems); err != nil {
			return nil, fmt.Errorf("failed to store problems: %w", err)
		}
	}

	return &ProblemResult{Problems: problems}, nil
}
