package usecase

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/citizengeo/sites/internal/domain"
)

const siteTypeCacheKey = "site_types"

// SiteTypeUsecase serves the site type reference table. Rows change only
// through administrative tooling, so the list is cached in-process with a
// short TTL instead of hitting the store on every request.
type SiteTypeUsecase struct {
	repo  SiteTypeRepository
	cache *gocache.Cache
}

func NewSiteTypeUsecase(repo SiteTypeRepository) *SiteTypeUsecase {
	return &SiteTypeUsecase{
		repo:  repo,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (uc *SiteTypeUsecase) List(ctx context.Context) ([]domain.SiteType, error) {
	if cached, ok := uc.cache.Get(siteTypeCacheKey); ok {
		return cached.([]domain.SiteType), nil
	}

	types, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(siteTypeCacheKey, types, gocache.DefaultExpiration)
	return types, nil
}
