package mapper

import (
	"encoding/json"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/model"

	"gorm.io/datatypes"
)

type UserProfileMapper struct{}

func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

// ToEntity tolerates malformed stored JSON by returning empty preferences.
func (m *UserProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	prefs := make(map[string]interface{})
	if len(p.Preferences) > 0 {
		if err := json.Unmarshal(p.Preferences, &prefs); err != nil || prefs == nil {
			prefs = make(map[string]interface{})
		}
	}

	return &entity.UserProfile{
		UserId:      p.UserId,
		Preferences: prefs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *UserProfileMapper) ToModel(p *entity.UserProfile) (*model.UserProfile, error) {
	if p == nil {
		return nil, nil
	}

	prefs := p.Preferences
	if prefs == nil {
		prefs = map[string]interface{}{}
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}

	return &model.UserProfile{
		UserId:      p.UserId,
		Preferences: datatypes.JSON(raw),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
