package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/citizengeo/sites/internal/domain"
	"github.com/citizengeo/sites/internal/infrastructure/database/models"
)

type SiteTypeRepository struct {
	db *gorm.DB
}

func NewSiteTypeRepository(db *gorm.DB) *SiteTypeRepository {
	return &SiteTypeRepository{db: db}
}

func (r *SiteTypeRepository) List(ctx context.Context) ([]domain.SiteType, error) {
	var rows []models.SiteType
	err := r.db.WithContext(ctx).
		Order("id_typesite").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	types := make([]domain.SiteType, 0, len(rows))
	for _, row := range rows {
		types = append(types, domain.SiteType{
			IDTypeSite: row.IDTypeSite,
			Category:   row.Category,
			Type:       row.Type,
			Pictogram:  row.Pictogram,
			CustomForm: row.CustomForm,
			Created:    row.TimestampCreate,
			Updated:    row.TimestampUpdate,
		})
	}
	return types, nil
}
