package service

import (
	"errors"
	"time"

	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
)

// ErrProfileExists is returned when a create hits an already-registered user.
var ErrProfileExists = errors.New("profile already exists")

const (
	defaultExperienceLevel  = "beginner"
	defaultDailyGoalMinutes = 30
)

// ProfileRequest is the client-facing profile payload. Pointer fields
// distinguish "absent" from zero values so updates stay partial.
type ProfileRequest struct {
	UserID               string    `json:"userId"`
	DisplayName          *string   `json:"displayName"`
	Email                *string   `json:"email"`
	AvatarURL            *string   `json:"avatarUrl"`
	Bio                  *string   `json:"bio"`
	LearningGoals        *[]string `json:"learningGoals"`
	PreferredTopics      *[]string `json:"preferredTopics"`
	ExperienceLevel      *string   `json:"experienceLevel"`
	DailyGoalMinutes     *int      `json:"dailyGoalMinutes"`
	NotificationsEnabled *bool     `json:"notificationsEnabled"`
}

type ProfileService interface {
	GetProfile(userID string) (*model.Profile, error)
	CreateProfile(req ProfileRequest) (*model.Profile, error)
	// UpsertProfile creates the profile when absent, otherwise applies only
	// the provided fields. The bool reports whether a row was created.
	UpsertProfile(req ProfileRequest) (*model.Profile, bool, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(userID string) (*model.Profile, error) {
	return s.profileRepo.GetByUserID(userID)
}

func (s *profileService) CreateProfile(req ProfileRequest) (*model.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := newProfileFromRequest(req)
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpsertProfile(req ProfileRequest) (*model.Profile, bool, error) {
	existing, err := s.profileRepo.GetByUserID(req.UserID)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		profile := newProfileFromRequest(req)
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, false, err
		}
		return profile, true, nil
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.LearningGoals != nil {
		fields["learning_goals"] = *req.LearningGoals
	}
	if req.PreferredTopics != nil {
		fields["preferred_topics"] = *req.PreferredTopics
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.DailyGoalMinutes != nil {
		fields["daily_goal_minutes"] = *req.DailyGoalMinutes
	}
	if req.NotificationsEnabled != nil {
		fields["notifications_enabled"] = *req.NotificationsEnabled
	}

	updated, err := s.profileRepo.UpdateFields(req.UserID, fields)
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

func newProfileFromRequest(req ProfileRequest) *model.Profile {
	profile := &model.Profile{
		UserID:               req.UserID,
		LearningGoals:        []string{},
		PreferredTopics:      []string{},
		ExperienceLevel:      defaultExperienceLevel,
		DailyGoalMinutes:     defaultDailyGoalMinutes,
		NotificationsEnabled: true,
	}
	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.LearningGoals != nil {
		profile.LearningGoals = *req.LearningGoals
	}
	if req.PreferredTopics != nil {
		profile.PreferredTopics = *req.PreferredTopics
	}
	if req.ExperienceLevel != nil {
		profile.ExperienceLevel = *req.ExperienceLevel
	}
	if req.DailyGoalMinutes != nil {
		profile.DailyGoalMinutes = *req.DailyGoalMinutes
	}
	if req.NotificationsEnabled != nil {
		profile.NotificationsEnabled = *req.NotificationsEnabled
	}
	return profile
}
