package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/citizengeo/sites/internal/domain"
)

// CreateSiteInput is the validated input for creating a site. Unknown
// request fields have already been dropped by the transport layer;
// Identity is nil for anonymous submissions.
type CreateSiteInput struct {
	IDProgram int             `validate:"required"`
	IDType    int             `validate:"required"`
	Name      string          `validate:"max=250"`
	ObsTxt    string          `validate:"max=150"`
	Email     string          `validate:"omitempty,email"`
	Photo     *string         `validate:"-"`
	Geometry  json.RawMessage `validate:"required"`
	Identity  *domain.Identity
}

type SiteUsecase struct {
	repo      SiteRepository
	publisher SitePublisher
	validate  *validator.Validate
}

func NewSiteUsecase(repo SiteRepository, publisher SitePublisher) *SiteUsecase {
	return &SiteUsecase{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

func (uc *SiteUsecase) List(ctx context.Context) ([]domain.Site, error) {
	return uc.repo.List(ctx)
}

func (uc *SiteUsecase) ListByProgram(ctx context.Context, idProgram int) ([]domain.Site, error) {
	return uc.repo.ListByProgram(ctx, idProgram)
}

func (uc *SiteUsecase) Get(ctx context.Context, idSite int) (*domain.Site, error) {
	return uc.repo.Get(ctx, idSite)
}

// Create persists a new site and re-reads it by primary key so the
// response reflects column defaults and timestamps. Attribution rules:
// an authenticated identity overrides any client-supplied observer name
// and email; an anonymous submission defaults the observer name when the
// client left it empty.
func (uc *SiteUsecase) Create(ctx context.Context, input CreateSiteInput) (*domain.Site, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}

	point, err := domain.ParseGeoJSONPoint(input.Geometry)
	if err != nil {
		return nil, err
	}

	site := domain.Site{
		IDProgram: input.IDProgram,
		IDType:    input.IDType,
		Name:      input.Name,
		ObsTxt:    input.ObsTxt,
		Email:     input.Email,
		Photo:     input.Photo,
		Geom:      point,
	}

	if input.Identity != nil {
		idRole := input.Identity.IDRole
		site.IDRole = &idRole
		site.ObsTxt = input.Identity.Username
		site.Email = input.Identity.Email
	} else if site.ObsTxt == "" {
		site.ObsTxt = domain.AnonymousObserver
	}

	site.UUIDSINP = uuid.New()

	idSite, err := uc.repo.Create(ctx, site)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Get(ctx, idSite)
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		// best effort only, the row is already committed
		if err := uc.publisher.PublishSiteCreated(ctx, domain.SiteEvent{
			Type:    domain.EventSiteCreated,
			Feature: created.AsFeature(),
		}); err != nil {
			slog.WarnContext(ctx, "failed to publish site event",
				slog.String("error", err.Error()),
				slog.String("module", "sites"),
			)
		}
	}

	return created, nil
}
