package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	a "kunstkamera-backend/internal/domains/artifact"
	"kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/infrastructure/queue"
)

type artifactService struct {
	repo       a.Repository
	museumRepo museum.Repository
	queue      queue.Enqueuer

	// storageURLPrefix is the public base URL of the file storage. Content
	// URLs under it belong to us and their objects are cleaned up on delete.
	storageURLPrefix string
	strictLinkHosts  bool
}

func NewArtifactService(
	repo a.Repository,
	museumRepo museum.Repository,
	q queue.Enqueuer,
	storageURLPrefix string,
	strictLinkHosts bool,
) a.Service {
	return &artifactService{
		repo:             repo,
		museumRepo:       museumRepo,
		queue:            q,
		storageURLPrefix: storageURLPrefix,
		strictLinkHosts:  strictLinkHosts,
	}
}

// Create adds an artifact to a museum the requester owns. When no
// order_index is supplied the artifact lands after its siblings; the first
// artifact in an empty museum gets index 1.
func (s *artifactService) Create(ctx context.Context, requesterID uuid.UUID, req *a.CreateArtifactRequest) (*a.Artifact, error) {
	if err := req.Validate(s.strictLinkHosts); err != nil {
		return nil, err
	}

	if err := s.checkMuseumOwnership(ctx, requesterID, req.MuseumID); err != nil {
		return nil, err
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		max, err := s.repo.MaxOrderIndex(ctx, req.MuseumID)
		if err != nil {
			return nil, err
		}
		orderIndex = max + 1
	}

	art := &a.Artifact{
		ID:           uuid.New(),
		MuseumID:     req.MuseumID,
		Title:        req.Title,
		Description:  req.Description,
		ArtifactType: a.ArtifactTypeEnum(req.ArtifactType),
		ContentURL:   req.ContentURL,
		FileMetadata: req.FileMetadata,
		OrderIndex:   orderIndex,
	}

	return s.repo.Create(ctx, art)
}

// GetByID returns an artifact whose parent museum is visible to the
// requester.
func (s *artifactService) GetByID(ctx context.Context, requesterID, id uuid.UUID) (*a.Artifact, error) {
	art, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, a.ErrArtifactNotFound
	}

	mus, err := s.museumRepo.GetByID(ctx, art.MuseumID)
	if err != nil {
		return nil, err
	}
	if mus == nil || (!mus.IsPublic && mus.UserID != requesterID) {
		return nil, a.ErrArtifactNotFound
	}

	return art, nil
}

// Update resolves the target and its ownership before looking at the
// payload, so a non-owner never sees a validation response.
func (s *artifactService) Update(ctx context.Context, requesterID, id uuid.UUID, req a.UpdateArtifactRequest) (*a.Artifact, error) {
	art, err := s.loadOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(s.strictLinkHosts); err != nil {
		return nil, err
	}

	if !req.HasChanges() {
		return art, nil
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, a.ErrArtifactNotFound
	}

	return updated, nil
}

// Delete removes an artifact and schedules cleanup of its stored file when
// the content URL points into our storage.
func (s *artifactService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	art, err := s.loadOwned(ctx, requesterID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if key, ok := s.storageKey(art.ContentURL); ok {
		if err := s.queue.EnqueueDeleteObject(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to enqueue storage cleanup")
		}
	}

	return nil
}

// loadOwned loads an artifact and verifies the requester owns its parent
// museum. Ownership lives on the museum alone.
func (s *artifactService) loadOwned(ctx context.Context, requesterID, id uuid.UUID) (*a.Artifact, error) {
	art, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, a.ErrArtifactNotFound
	}

	mus, err := s.museumRepo.GetByID(ctx, art.MuseumID)
	if err != nil {
		return nil, err
	}
	if mus == nil {
		return nil, a.ErrArtifactNotFound
	}
	if mus.UserID != requesterID {
		if !mus.IsPublic {
			return nil, a.ErrArtifactNotFound
		}
		return nil, a.ErrForbidden
	}

	return art, nil
}

// checkMuseumOwnership verifies the target museum exists and belongs to the
// requester. Private museums of others look absent.
func (s *artifactService) checkMuseumOwnership(ctx context.Context, requesterID, museumID uuid.UUID) error {
	mus, err := s.museumRepo.GetByID(ctx, museumID)
	if err != nil {
		return err
	}
	if mus == nil {
		return a.ErrMuseumNotFound
	}
	if mus.UserID != requesterID {
		if !mus.IsPublic {
			return a.ErrMuseumNotFound
		}
		return a.ErrForbidden
	}
	return nil
}

func (s *artifactService) storageKey(contentURL *string) (string, bool) {
	if contentURL == nil || s.storageURLPrefix == "" {
		return "", false
	}
	if !strings.HasPrefix(*contentURL, s.storageURLPrefix) {
		return "", false
	}
	key := strings.TrimPrefix(*contentURL, s.storageURLPrefix)
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", false
	}
	return key, true
}
