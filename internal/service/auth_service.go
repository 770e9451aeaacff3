package service

import (
	"context"
	"strings"

	"learnloop-backend/internal/auth"
	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
	"learnloop-backend/utilities"
)

// AuthService is the thin boundary to the hosted auth provider. All password
// and session validation happens on the provider side.
type AuthService interface {
	ExchangeCode(ctx context.Context, code string) (*auth.Session, error)
	ResolveUser(ctx context.Context, accessToken string) (*auth.User, error)
	Signup(ctx context.Context, email, password, displayName string) (*auth.User, error)
}

type authService struct {
	provider    *auth.ProviderClient
	profileRepo repository.ProfileRepository
}

func NewAuthService(provider *auth.ProviderClient, profileRepo repository.ProfileRepository) AuthService {
	return &authService{
		provider:    provider,
		profileRepo: profileRepo,
	}
}

func (s *authService) ExchangeCode(ctx context.Context, code string) (*auth.Session, error) {
	return s.provider.ExchangeCode(ctx, code)
}

func (s *authService) ResolveUser(ctx context.Context, accessToken string) (*auth.User, error) {
	return s.provider.GetUser(ctx, accessToken)
}

// Signup registers the account with the provider and bootstraps the local
// profile row. A failed profile write does not undo the provider account; the
// profile falls back to create-on-first-PUT.
func (s *authService) Signup(ctx context.Context, email, password, displayName string) (*auth.User, error) {
	user, err := s.provider.AdminCreateUser(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}

	name := displayName
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	existing, err := s.profileRepo.GetByUserID(user.ID)
	if err == nil && existing == nil {
		err = s.profileRepo.Create(&model.Profile{
			UserID:               user.ID,
			DisplayName:          name,
			Email:                email,
			LearningGoals:        []string{},
			PreferredTopics:      []string{},
			ExperienceLevel:      defaultExperienceLevel,
			DailyGoalMinutes:     defaultDailyGoalMinutes,
			NotificationsEnabled: true,
		})
	}
	if err != nil {
		utilities.Warn("failed to bootstrap profile for user %s: %v", user.ID, err)
	}

	return user, nil
}
