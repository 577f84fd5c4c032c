package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/citizengeo/sites/internal/domain"
	"github.com/citizengeo/sites/internal/infrastructure/database/models"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) List(ctx context.Context) ([]domain.Site, error) {
	var rows []models.Site
	err := r.db.WithContext(ctx).
		Order("id_site").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return sitesToDomain(rows), nil
}

func (r *SiteRepository) ListByProgram(ctx context.Context, idProgram int) ([]domain.Site, error) {
	var rows []models.Site
	err := r.db.WithContext(ctx).
		Where("id_program = ?", idProgram).
		Order("id_site").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return sitesToDomain(rows), nil
}

func (r *SiteRepository) Get(ctx context.Context, idSite int) (*domain.Site, error) {
	var row models.Site
	err := r.db.WithContext(ctx).
		Where("id_site = ?", idSite).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundError{Resource: "site"}
	}
	if err != nil {
		return nil, err
	}
	site := siteToDomain(row)
	return &site, nil
}

func (r *SiteRepository) Create(ctx context.Context, site domain.Site) (int, error) {
	row := models.Site{
		UUIDSINP:  site.UUIDSINP,
		IDProgram: site.IDProgram,
		Name:      site.Name,
		IDType:    site.IDType,
		Geom:      site.Geom,
		Photo:     site.Photo,
		ObserverMixin: models.ObserverMixin{
			IDRole: site.IDRole,
			ObsTxt: site.ObsTxt,
			Email:  site.Email,
		},
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}

	return row.IDSite, nil
}

func siteToDomain(row models.Site) domain.Site {
	return domain.Site{
		ID:        row.IDSite,
		UUIDSINP:  row.UUIDSINP,
		IDProgram: row.IDProgram,
		Name:      row.Name,
		IDType:    row.IDType,
		Geom:      row.Geom,
		Photo:     row.Photo,
		IDRole:    row.IDRole,
		ObsTxt:    row.ObsTxt,
		Email:     row.Email,
		Created:   row.TimestampCreate,
		Updated:   row.TimestampUpdate,
	}
}

func sitesToDomain(rows []models.Site) []domain.Site {
	sites := make([]domain.Site, 0, len(rows))
	for _, row := range rows {
		sites = append(sites, siteToDomain(row))
	}
	return sites
}
