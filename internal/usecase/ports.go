package usecase

import (
	"context"

	"github.com/citizengeo/sites/internal/domain"
)

// SiteRepository defines storage operations for monitoring sites.
type SiteRepository interface {
	List(ctx context.Context) ([]domain.Site, error)
	ListByProgram(ctx context.Context, idProgram int) ([]domain.Site, error)
	Get(ctx context.Context, idSite int) (*domain.Site, error)
	Create(ctx context.Context, site domain.Site) (int, error)
}

// SiteTypeRepository defines lookup of the site type reference table.
type SiteTypeRepository interface {
	List(ctx context.Context) ([]domain.SiteType, error)
}

// UserRepository defines lookup of platform users for identity
// resolution.
type UserRepository interface {
	Get(ctx context.Context, idRole int) (*domain.User, error)
}

// SitePublisher broadcasts site lifecycle events to realtime listeners.
type SitePublisher interface {
	PublishSiteCreated(ctx context.Context, event domain.SiteEvent) error
}
