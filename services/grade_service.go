package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// GradeService persists faculty-submitted scores. It is the only writer of
// Grade rows and the only producer of activity log entries.
type GradeService struct {
	repo          *repository.Repository
	notifications *NotificationService
}

// NewGradeService creates a new grade service. notifications may be nil;
// student notices are then skipped.
func NewGradeService(repo *repository.Repository, notifications *NotificationService) *GradeService {
	return &GradeService{repo: repo, notifications: notifications}
}

// GradeSubmission is one row of the grading form. A zero StudentID means
// unset; the enrollment's stored student is used instead.
type GradeSubmission struct {
	EnrollmentID uint     `json:"enrollment_id" validate:"required"`
	StudentID    uint     `json:"student_id"`
	FinalScore   *float64 `json:"final_score" validate:"omitempty,min=0,max=100"`
	Comment      *string  `json:"comment"`
}

// RosterRow is one student on the faculty grading page, with the existing
// grade if any.
type RosterRow struct {
	EnrollmentID uint     `json:"enrollment_id"`
	StudentID    uint     `json:"student_id"`
	StudentCode  string   `json:"student_code"`
	StudentName  string   `json:"student_name"`
	Status       string   `json:"status"`
	FinalScore   *float64 `json:"final_score"`
	LetterGrade  *string  `json:"letter_grade"`
	Comment      *string  `json:"comment"`
}

// GetCourseRoster lists the enrollments of one course that are assigned to
// the given faculty, joined with student names and current grades.
func (s *GradeService) GetCourseRoster(ctx context.Context, courseID, facultyID uint) ([]RosterRow, error) {
	enrollments, err := s.repo.Enrollments.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	rows := make([]RosterRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if enrollment.FacultyID == nil || *enrollment.FacultyID != facultyID {
			continue
		}
		row := RosterRow{
			EnrollmentID: enrollment.ID,
			StudentID:    enrollment.StudentID,
			Status:       enrollment.Status,
		}
		student, err := s.repo.Students.GetByID(ctx, enrollment.StudentID)
		if err != nil {
			return nil, err
		}
		if student != nil {
			row.StudentCode = student.StudentID
			row.StudentName = student.FullName
		}
		grade, err := s.repo.Grades.GetByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return nil, err
		}
		if grade != nil {
			row.FinalScore = grade.FinalScore
			row.LetterGrade = grade.LetterGrade
			row.Comment = grade.Comment
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type savedGrade struct {
	grade       *model.Grade
	studentName string
	courseCode  string
	courseName  string
}

// SaveGrades processes a batch of submitted scores for one course. Rows
// without a score are skipped, as are rows whose enrollment is not assigned
// to the submitting faculty; partial batches are best-effort and skipping
// is silent. Every accepted row replaces all prior Grade rows for its
// (student, course) pair with a single fresh row, and an activity log entry
// records the change with before/after snapshots. Returns the number of
// grades written.
func (s *GradeService) SaveGrades(ctx context.Context, courseID, facultyID uint, submissions []GradeSubmission) (int, error) {
	faculty, err := s.repo.Faculties.GetByID(ctx, facultyID)
	if err != nil {
		return 0, err
	}
	if faculty == nil {
		return 0, Conflict("Faculty not found.")
	}
	course, err := s.repo.Courses.GetByID(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if course == nil {
		return 0, Conflict("Course not found.")
	}

	var saved []savedGrade
	err = s.repo.Transaction(func(tx *repository.Repository) error {
		for _, submission := range submissions {
			if submission.FinalScore == nil {
				continue
			}
			enrollment, err := tx.Enrollments.GetByID(ctx, submission.EnrollmentID)
			if err != nil {
				return err
			}
			if enrollment == nil || enrollment.CourseID != courseID {
				continue
			}
			if enrollment.FacultyID == nil || *enrollment.FacultyID != facultyID {
				// Not this faculty's enrollment to grade.
				continue
			}
			studentID := submission.StudentID
			if studentID == 0 {
				studentID = enrollment.StudentID
			}
			student, err := tx.Students.GetByID(ctx, studentID)
			if err != nil {
				return err
			}
			if student == nil {
				continue
			}

			prior, err := tx.Grades.GetByStudentAndCourse(ctx, studentID, courseID)
			if err != nil {
				return err
			}
			var oldSnapshot *model.GradeSnapshot
			if len(prior) > 0 {
				oldSnapshot = &model.GradeSnapshot{
					FinalScore:  prior[0].FinalScore,
					TotalScore:  prior[0].TotalScore,
					LetterGrade: prior[0].LetterGrade,
					Comment:     prior[0].Comment,
				}
			}
			// Replacement is unconditional delete-then-insert, even for a
			// single existing row. This keeps the pair single-row without
			// relying on upsert semantics.
			for _, old := range prior {
				if err := tx.Grades.Delete(ctx, old.ID); err != nil {
					return err
				}
			}

			score := *submission.FinalScore
			total := score
			letter := LetterGrade(score)
			gradingFaculty := facultyID
			grade := &model.Grade{
				EnrollmentID: enrollment.ID,
				StudentID:    studentID,
				CourseID:     courseID,
				FinalScore:   submission.FinalScore,
				TotalScore:   &total,
				LetterGrade:  &letter,
				Comment:      submission.Comment,
				FacultyID:    &gradingFaculty,
			}
			if err := tx.Grades.Create(ctx, grade); err != nil {
				return err
			}

			if err := s.logGradeChange(ctx, tx, grade, oldSnapshot, student, course, faculty); err != nil {
				return err
			}
			saved = append(saved, savedGrade{
				grade:       grade,
				studentName: student.FullName,
				courseCode:  course.CourseCode,
				courseName:  course.CourseName,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, sg := range saved {
		s.notifyGradeAdded(ctx, sg)
	}
	return len(saved), nil
}

func (s *GradeService) logGradeChange(ctx context.Context, tx *repository.Repository, grade *model.Grade, oldSnapshot *model.GradeSnapshot, student *model.Student, course *model.Course, faculty *model.Faculty) error {
	activityType := model.ActivityGradeCreated
	description := fmt.Sprintf("Grade added for %s in %s", student.FullName, course.CourseCode)
	var oldValue datatypes.JSON
	if oldSnapshot != nil {
		activityType = model.ActivityGradeUpdated
		description = fmt.Sprintf("Grade updated for %s in %s", student.FullName, course.CourseCode)
		raw, err := json.Marshal(oldSnapshot)
		if err != nil {
			return err
		}
		oldValue = raw
	}
	newValue, err := json.Marshal(model.GradeSnapshot{
		FinalScore:  grade.FinalScore,
		TotalScore:  grade.TotalScore,
		LetterGrade: grade.LetterGrade,
		Comment:     grade.Comment,
	})
	if err != nil {
		return err
	}
	return tx.ActivityLogs.Add(ctx, &model.ActivityLog{
		ActivityType: activityType,
		GradeID:      &grade.ID,
		StudentID:    &grade.StudentID,
		CourseID:     &grade.CourseID,
		FacultyID:    grade.FacultyID,
		Description:  description,
		OldValue:     oldValue,
		NewValue:     newValue,
		CreatedAt:    time.Now(),
		PerformedBy:  faculty.FacultyID,
	})
}

func (s *GradeService) notifyGradeAdded(ctx context.Context, sg savedGrade) {
	if s.notifications == nil {
		return
	}
	letter := ""
	if sg.grade.LetterGrade != nil {
		letter = *sg.grade.LetterGrade
	}
	err := s.notifications.Notify(ctx, CreateNotificationRequest{
		Type:             model.NotificationGradeAdded,
		Title:            "New grade posted",
		Message:          fmt.Sprintf("Your grade for %s (%s) has been posted: %s.", sg.courseName, sg.courseCode, letter),
		RecipientRole:    model.RoleStudent,
		RecipientID:      &sg.grade.StudentID,
		RelatedStudentID: &sg.grade.StudentID,
		RelatedCourseID:  &sg.grade.CourseID,
		RelatedGradeID:   &sg.grade.ID,
	})
	if err != nil {
		log.Printf("Failed to create grade notification: %v", err)
	}
}
