package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnloop-backend/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateProfileAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	profile, err := svc.CreateProfile(ProfileRequest{
		UserID:      "user-1",
		DisplayName: strPtr("Ada"),
		Email:       strPtr("ada@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", profile.DisplayName)
	assert.Equal(t, "beginner", profile.ExperienceLevel)
	assert.Equal(t, 30, profile.DailyGoalMinutes)
	assert.True(t, profile.NotificationsEnabled)
	assert.NotNil(t, profile.LearningGoals)
	assert.Empty(t, profile.LearningGoals)
}

func TestCreateProfileConflictsWhenExists(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	_, err := svc.CreateProfile(ProfileRequest{UserID: "user-1", DisplayName: strPtr("Ada")})
	require.NoError(t, err)

	_, err = svc.CreateProfile(ProfileRequest{UserID: "user-1", DisplayName: strPtr("Someone Else")})
	assert.ErrorIs(t, err, ErrProfileExists)

	// The original row is untouched.
	stored, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.DisplayName)
}

func TestUpsertProfileCreatesWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	profile, created, err := svc.UpsertProfile(ProfileRequest{UserID: "user-1", DisplayName: strPtr("Ada")})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Ada", profile.DisplayName)
}

func TestUpsertProfileUpdatesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	_, err := svc.CreateProfile(ProfileRequest{
		UserID:           "user-1",
		DisplayName:      strPtr("Ada"),
		Bio:              strPtr("Original bio"),
		DailyGoalMinutes: intPtr(45),
	})
	require.NoError(t, err)

	updated, created, err := svc.UpsertProfile(ProfileRequest{
		UserID: "user-1",
		Bio:    strPtr("New bio"),
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, "Ada", updated.DisplayName, "unset fields keep their values")
	assert.Equal(t, 45, updated.DailyGoalMinutes)
}

func TestUpsertProfileUpdatesSliceFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	_, err := svc.CreateProfile(ProfileRequest{
		UserID:      "user-1",
		DisplayName: strPtr("Ada"),
	})
	require.NoError(t, err)

	goals := []string{"pass the exam", "build a project"}
	topics := []string{"graphs"}
	updated, created, err := svc.UpsertProfile(ProfileRequest{
		UserID:          "user-1",
		LearningGoals:   &goals,
		PreferredTopics: &topics,
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, goals, updated.LearningGoals)
	assert.Equal(t, topics, updated.PreferredTopics)
	assert.Equal(t, "Ada", updated.DisplayName)

	// The round trip through storage preserves the slices.
	stored, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, goals, stored.LearningGoals)
}

func TestGetProfileAbsentIsNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	profile, err := svc.GetProfile("nobody")
	require.NoError(t, err)
	assert.Nil(t, profile)
}
