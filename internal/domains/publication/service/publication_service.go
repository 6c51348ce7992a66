package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	pub "kunstkamera-backend/internal/domains/publication"
	"kunstkamera-backend/pkg/cache"
)

const (
	cacheTTL     = 60 * time.Second
	sitemapLimit = 1000
)

type publicationService struct {
	repo    pub.Repository
	cache   cache.Cache
	siteURL string
}

func NewPublicationService(repo pub.Repository, c cache.Cache, siteURL string) pub.Service {
	return &publicationService{
		repo:    repo,
		cache:   c,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// GetPublished serves public museum pages with a short cache window. The
// cache is best-effort; a failing cache degrades to the store.
func (s *publicationService) GetPublished(ctx context.Context, username, slug string) (*pub.PublishedMuseum, error) {
	key := pub.CacheKey(username, slug)

	var cached pub.PublishedMuseum
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Publication cache read failed")
	}
	if hit {
		return &cached, nil
	}

	snap, err := s.repo.GetPublished(ctx, username, slug)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, key, snap, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Publication cache write failed")
	}

	return snap, nil
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the sitemap of public museum pages, cached alongside the
// publications themselves.
func (s *publicationService) Sitemap(ctx context.Context) ([]byte, error) {
	var cached string
	hit, err := s.cache.Get(ctx, pub.SitemapCacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("Sitemap cache read failed")
	}
	if hit {
		return []byte(cached), nil
	}

	entries, err := s.repo.ListPublic(ctx, sitemapLimit)
	if err != nil {
		return nil, err
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)+1),
	}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:     s.siteURL + "/",
		LastMod: time.Now().UTC().Format("2006-01-02"),
	})
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/public/%s/%s", s.siteURL, e.Username, e.Slug),
			LastMod: e.UpdatedAt.UTC().Format("2006-01-02"),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	out := append([]byte(xml.Header), body...)

	if err := s.cache.Set(ctx, pub.SitemapCacheKey, string(out), cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Sitemap cache write failed")
	}

	return out, nil
}
