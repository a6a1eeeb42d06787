package service

import (
	"context"

	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/memory"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetPersona(ctx context.Context, userId uuid.UUID) (*dto.PersonaResponse, error)
	UpsertPersona(ctx context.Context, userId uuid.UUID, req *dto.UpsertPersonaRequest) (*dto.PersonaResponse, error)
}

type profileService struct {
	uowFactory   unitofwork.RepositoryFactory
	profileCache *memory.ProfileCache
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, profileCache *memory.ProfileCache) IProfileService {
	return &profileService{
		uowFactory:   uowFactory,
		profileCache: profileCache,
	}
}

func toPersonaResponse(userId uuid.UUID, profile *entity.UserProfile) *dto.PersonaResponse {
	if profile == nil {
		return &dto.PersonaResponse{UserId: userId, Preferences: map[string]interface{}{}}
	}
	updatedAt := profile.UpdatedAt
	return &dto.PersonaResponse{
		UserId:      profile.UserId,
		Preferences: profile.Preferences,
		UpdatedAt:   &updatedAt,
	}
}

// GetPersona returns empty preferences for a user who never saved any.
func (c *profileService) GetPersona(ctx context.Context, userId uuid.UUID) (*dto.PersonaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toPersonaResponse(userId, profile), nil
}

func (c *profileService) UpsertPersona(ctx context.Context, userId uuid.UUID, req *dto.UpsertPersonaRequest) (*dto.PersonaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	profile := &entity.UserProfile{
		UserId:      userId,
		Preferences: req.Preferences,
	}
	if err := uow.UserProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// next enrichment run must see the new persona
	if c.profileCache != nil {
		c.profileCache.Delete(userId)
	}

	return toPersonaResponse(userId, profile), nil
}
