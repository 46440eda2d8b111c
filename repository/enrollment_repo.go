package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// EnrollmentRepository is the data access boundary for enrollments.
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Enrollment, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID uint) ([]model.Enrollment, error)
	GetByCourseID(ctx context.Context, courseID uint) ([]model.Enrollment, error)
	GetByFacultyID(ctx context.Context, facultyID uint) ([]model.Enrollment, error)
	GetAll(ctx context.Context) ([]model.Enrollment, error)
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Update(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, id uint) error
	CountByFacultyID(ctx context.Context, facultyID uint) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo creates the GORM-backed enrollment repository.
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).First(&enrollment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) GetByStudentID(ctx context.Context, studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetByCourseID(ctx context.Context, courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetByFacultyID(ctx context.Context, facultyID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetAll(ctx context.Context) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Enrollment{}, id).Error
}

func (r *enrollmentRepo) CountByFacultyID(ctx context.Context, facultyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("faculty_id = ?", facultyID).Count(&count).Error
	return count, err
}
