package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	m "kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/domains/publication"
	"kunstkamera-backend/internal/infrastructure/queue"
	"kunstkamera-backend/pkg/cache"
)

type museumService struct {
	repo  m.Repository
	cache cache.Cache
	queue queue.Enqueuer
}

func NewMuseumService(repo m.Repository, c cache.Cache, q queue.Enqueuer) m.Service {
	return &museumService{
		repo:  repo,
		cache: c,
		queue: q,
	}
}

// Create makes a new museum owned by ownerID. The slug pre-check is the
// fast path; the unique constraint in the store is the authoritative one.
func (s *museumService) Create(ctx context.Context, ownerID uuid.UUID, req *m.CreateMuseumRequest) (*m.MuseumWithMeta, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsBySlug(ctx, req.Slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, m.ErrSlugTaken
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	layout := m.LayoutTypeGrid
	if req.LayoutType != "" {
		layout = m.LayoutTypeEnum(req.LayoutType)
	}

	mus := &m.Museum{
		ID:            uuid.New(),
		UserID:        ownerID,
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		IsPublic:      isPublic,
		LayoutType:    layout,
	}

	created, err := s.repo.Create(ctx, mus)
	if err != nil {
		return nil, err
	}

	s.invalidatePublication(ctx, created.Slug)

	return s.repo.GetWithMetaByID(ctx, created.ID)
}

// GetByID returns a museum visible to the requester. Private museums are
// indistinguishable from absent ones for anybody but the owner.
func (s *museumService) GetByID(ctx context.Context, requesterID, id uuid.UUID) (*m.MuseumWithMeta, error) {
	meta, err := s.repo.GetWithMetaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, m.ErrMuseumNotFound
	}
	if !meta.IsPublic && meta.UserID != requesterID {
		return nil, m.ErrMuseumNotFound
	}

	return meta, nil
}

func (s *museumService) List(ctx context.Context, requesterID uuid.UUID, targetUserID *uuid.UUID) ([]*m.MuseumWithMeta, error) {
	owner := requesterID
	publicOnly := false

	if targetUserID != nil && *targetUserID != requesterID {
		owner = *targetUserID
		publicOnly = true
	}

	museums, err := s.repo.ListByOwner(ctx, owner, publicOnly)
	if err != nil {
		return nil, err
	}
	if museums == nil {
		museums = []*m.MuseumWithMeta{}
	}

	return museums, nil
}

// Update follows load, ownership, validate in that order: a non-owner gets
// the 403/404 answer even when the payload is also invalid.
func (s *museumService) Update(ctx context.Context, requesterID, id uuid.UUID, req m.UpdateMuseumRequest) (*m.MuseumWithMeta, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, m.ErrMuseumNotFound
	}
	if existing.UserID != requesterID {
		return nil, m.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.HasChanges() {
		return s.repo.GetWithMetaByID(ctx, id)
	}

	if req.Slug.Set && req.Slug.Value != existing.Slug {
		taken, err := s.repo.ExistsBySlug(ctx, req.Slug.Value, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, m.ErrSlugTaken
		}
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, m.ErrMuseumNotFound
	}

	// stale publications under the old slug die too
	s.invalidatePublication(ctx, existing.Slug)
	if updated.Slug != existing.Slug {
		s.invalidatePublication(ctx, updated.Slug)
	}

	return updated, nil
}

// Delete removes the museum and schedules storage cleanup for its cover
// and artifact files. The cleanup is asynchronous and best-effort.
func (s *museumService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return m.ErrMuseumNotFound
	}
	if existing.UserID != requesterID {
		return m.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidatePublication(ctx, existing.Slug)

	for _, prefix := range []string{
		fmt.Sprintf("artifacts/%s/", id),
		fmt.Sprintf("museum-covers/%s/", id),
	} {
		if err := s.queue.EnqueueDeletePrefix(ctx, prefix); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("Failed to enqueue storage cleanup")
		}
	}

	return nil
}

// Like records the requester's like. Visibility follows GetByID: liking a
// museum you cannot see behaves like liking a missing one.
func (s *museumService) Like(ctx context.Context, requesterID, id uuid.UUID) error {
	if err := s.checkVisible(ctx, requesterID, id); err != nil {
		return err
	}
	return s.repo.AddLike(ctx, id, requesterID)
}

func (s *museumService) Unlike(ctx context.Context, requesterID, id uuid.UUID) error {
	if err := s.checkVisible(ctx, requesterID, id); err != nil {
		return err
	}
	return s.repo.RemoveLike(ctx, id, requesterID)
}

func (s *museumService) checkVisible(ctx context.Context, requesterID, id uuid.UUID) error {
	mus, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mus == nil {
		return m.ErrMuseumNotFound
	}
	if !mus.IsPublic && mus.UserID != requesterID {
		return m.ErrMuseumNotFound
	}
	return nil
}

func (s *museumService) invalidatePublication(ctx context.Context, slug string) {
	if err := s.cache.DeletePattern(ctx, publication.CacheKeyPattern(slug)); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to invalidate publication cache")
	}
	if err := s.cache.Delete(ctx, publication.SitemapCacheKey); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate sitemap cache")
	}
}
