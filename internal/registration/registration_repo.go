package registration

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/registration_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, reg *Registration) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}
