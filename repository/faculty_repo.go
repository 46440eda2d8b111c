package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// FacultyRepository is the data access boundary for faculty profiles.
type FacultyRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Faculty, error)
	GetByFacultyID(ctx context.Context, facultyID string) (*model.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*model.Faculty, error)
	GetAll(ctx context.Context) ([]model.Faculty, error)
	Create(ctx context.Context, faculty *model.Faculty) error
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo creates the GORM-backed faculty repository.
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) GetByID(ctx context.Context, id uint) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).First(&faculty, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByFacultyID(ctx context.Context, facultyID string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).First(&faculty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByEmail(ctx context.Context, email string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&faculty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetAll(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).Order("id").Find(&faculties).Error
	return faculties, err
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Faculty{}, id).Error
}

func (r *facultyRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Faculty{}).Count(&count).Error
	return count, err
}
