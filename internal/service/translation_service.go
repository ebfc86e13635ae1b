package service

import (
	"context"

	"backend/internal/cache"
	"backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CountryTranslator resolves a locally-spelled country name to the ISO code
// the tariff catalog keys its origin rows by. Best-effort: unknown names
// pass through unchanged (they may already be codes).
type CountryTranslator interface {
	Translate(ctx context.Context, countryName string) string
}

// --- Interface ---

type TranslationService interface {
	CountryTranslator
	Invalidate(countryName string)
}

type translationService struct {
	repo  repository.TranslationRepository
	cache *cache.TTLCache
}

func NewTranslationService(repo repository.TranslationRepository, c *cache.TTLCache) TranslationService {
	return &translationService{repo: repo, cache: c}
}

// --- Implementation ---

// Translate is auxiliary to the computation path: a miss or store error must
// never fail a lookup, so failures degrade to the untranslated name.
func (s *translationService) Translate(ctx context.Context, countryName string) string {
	if countryName == "" {
		return ""
	}

	if code, ok := s.cache.Get(countryName); ok {
		return code
	}

	rec, err := s.repo.FindByName(ctx, countryName)
	if err != nil {
		logrus.WithError(err).WithField("country", countryName).Warn("country translation lookup failed")
		return countryName
	}
	if rec == nil {
		return countryName
	}

	s.cache.Set(countryName, rec.CountryCode)
	return rec.CountryCode
}

func (s *translationService) Invalidate(countryName string) {
	s.cache.Invalidate(countryName)
}
