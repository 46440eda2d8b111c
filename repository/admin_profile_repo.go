package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// AdminProfileRepository stores the single admin display profile.
type AdminProfileRepository interface {
	Get(ctx context.Context) (*model.AdminProfile, error)
	Save(ctx context.Context, profile *model.AdminProfile) error
}

type adminProfileRepo struct {
	db *gorm.DB
}

// NewAdminProfileRepo creates the GORM-backed admin profile repository.
func NewAdminProfileRepo(db *gorm.DB) AdminProfileRepository {
	return &adminProfileRepo{db: db}
}

func (r *adminProfileRepo) Get(ctx context.Context) (*model.AdminProfile, error) {
	var profile model.AdminProfile
	err := r.db.WithContext(ctx).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *adminProfileRepo) Save(ctx context.Context, profile *model.AdminProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
