package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// GradeRepository is the data access boundary for grades. Only the grade
// engine writes through it.
type GradeRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Grade, error)
	GetByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Grade, error)
	GetByStudentID(ctx context.Context, studentID uint) ([]model.Grade, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) ([]model.Grade, error)
	GetByFacultyID(ctx context.Context, facultyID uint) ([]model.Grade, error)
	GetAll(ctx context.Context) ([]model.Grade, error)
	Create(ctx context.Context, grade *model.Grade) error
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id uint) error
	CountByFacultyID(ctx context.Context, facultyID uint) (int64, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo creates the GORM-backed grade repository.
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) GetByID(ctx context.Context, id uint) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.WithContext(ctx).First(&grade, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) GetByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).First(&grade).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) GetByStudentID(ctx context.Context, studentID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("id").Find(&grades).Error
	return grades, err
}

func (r *gradeRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("id").Find(&grades).Error
	return grades, err
}

func (r *gradeRepo) GetByFacultyID(ctx context.Context, facultyID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("id").Find(&grades).Error
	return grades, err
}

func (r *gradeRepo) GetAll(ctx context.Context) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).Order("id").Find(&grades).Error
	return grades, err
}

func (r *gradeRepo) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepo) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, id).Error
}

func (r *gradeRepo) CountByFacultyID(ctx context.Context, facultyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Grade{}).
		Where("faculty_id = ?", facultyID).Count(&count).Error
	return count, err
}
