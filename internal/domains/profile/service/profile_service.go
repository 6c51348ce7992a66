package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kunstkamera-backend/internal/domains/profile"
	"kunstkamera-backend/internal/shared/utils"
	"kunstkamera-backend/pkg/logger"
)

type profileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) profile.Service {
	return &profileService{
		repo: repo,
	}
}

// GetOrCreate returns the principal's profile, creating it lazily on first
// authenticated fetch. The default username comes from the email local part
// when it is slug-safe; otherwise the username stays unset.
func (s *profileService) GetOrCreate(ctx context.Context, userID uuid.UUID, email, displayName string) (*profile.Profile, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	newProfile := &profile.Profile{
		UserID: userID,
	}
	if username := utils.UsernameFromEmail(email); username != "" {
		newProfile.Username = &username
	}
	if displayName != "" {
		newProfile.FullName = &displayName
	}

	created, err := s.repo.Create(ctx, newProfile)
	if err != nil {
		if !profile.IsUsernameTaken(err) {
			return nil, err
		}
		// The derived username is already held by someone else; fall back to
		// an unset username rather than failing the fetch.
		newProfile.Username = nil
		created, err = s.repo.Create(ctx, newProfile)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("profile created lazily", map[string]interface{}{
		"user_id": userID.String(),
	})
	return created, nil
}

// Update applies a PATCH payload for the owning principal.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.HasChanges() {
		existing, err := s.repo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		if existing == nil {
			return nil, profile.ErrProfileNotFound
		}
		return existing, nil
	}

	// Fast-path pre-check for a friendlier message; the unique constraint in
	// the store remains the authoritative answer under concurrency.
	if req.Username.Set && req.Username.Valid {
		taken, err := s.repo.ExistsByUsername(ctx, req.Username.Value, userID)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			return nil, profile.ErrUsernameTaken
		}
	}

	updated, err := s.repo.Update(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, profile.ErrProfileNotFound
	}

	return updated, nil
}
