package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/citizengeo/sites/internal/domain"
	"github.com/citizengeo/sites/internal/infrastructure/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(ctx context.Context, idRole int) (*domain.User, error) {
	var row models.User
	err := r.db.WithContext(ctx).
		Where("id_user = ?", idRole).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return nil, err
	}

	return &domain.User{
		IDRole:   row.IDUser,
		Username: row.Username,
		Email:    row.Email,
	}, nil
}
