package service

import (
	"context"

	"learnloop-backend/internal/llm"
	"learnloop-backend/utilities"
)

// EventSessionCompleted is published with the user id after each reflection,
// once the response is already on its way to the client.
const EventSessionCompleted = "session_completed"

// ReflectionRequest carries one finished session's statistics.
type ReflectionRequest struct {
	UserID            string `json:"userId"`
	Topic             string `json:"topic"`
	ProblemsSolved    int    `json:"problemsSolved"`
	ProblemsCorrect   int    `json:"problemsCorrect"`
	ConceptsCompleted int    `json:"conceptsCompleted"`
	TimeSpent         string `json:"timeSpent"`
}

type ReflectionService interface {
	Generate(ctx context.Context, req ReflectionRequest) (*llm.Reflection, error)
}

type reflectionService struct {
	generator *llm.Generator
}

func NewReflectionService(generator *llm.Generator) ReflectionService {
	return &reflectionService{generator: generator}
}

// Generate produces the coach reflection for a session. Reflections are never
// persisted; the session_completed event lets listeners refresh derived
// artifacts in the background.
func (s *reflectionService) Generate(ctx context.Context, req ReflectionRequest) (*llm.Reflection, error) {
	reflection, err := s.generator.GenerateReflection(ctx, llm.SessionStats{
		Topic:             req.Topic,
		ConceptsCompleted: req.ConceptsCompleted,
		ProblemsSolved:    req.ProblemsSolved,
		ProblemsCorrect:   req.ProblemsCorrect,
		TimeSpent:         req.TimeSpent,
	})
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}
	utilities.GlobalEventBus.Publish(EventSessionCompleted, userID)

	return reflection, nil
}
