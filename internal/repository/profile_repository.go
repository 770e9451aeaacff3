package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"learnloop-backend/internal/model"
)

type ProfileRepository interface {
	GetByUserID(userID string) (*model.Profile, error)
	Create(profile *model.Profile) error
	UpdateFields(userID string, fields map[string]interface{}) (*model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID returns nil without error when no profile exists; an absent
// profile is an empty state, not a failure.
func (r *profileRepository) GetByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

// UpdateFields applies only the given columns and returns the fresh row.
// Map-based Updates bypasses gorm's field serializers, so slice values are
// marshaled here into the column's JSON encoding.
func (r *profileRepository) UpdateFields(userID string, fields map[string]interface{}) (*model.Profile, error) {
	for k, v := range fields {
		if s, ok := v.([]string); ok {
			data, err := json.Marshal(s)
			if err != nil {
				return nil, err
			}
			fields[k] = string(data)
		}
	}

	err := r.db.Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}

	var updated model.Profile
	if err := r.db.Where("user_id = ?", userID).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
