package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/utils/auth"
)

// RunSeeds runs all seeders against db.
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedFaculty(); err != nil {
		return fmt.Errorf("failed to seed faculty: %w", err)
	}

	if err := s.SeedStudents(); err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}

	if err := s.SeedEnrollments(); err != nil {
		return fmt.Errorf("failed to seed enrollments: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	// Check if admin already exists
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin user already exists, skipping...")
		return nil
	}

	// Get admin credentials from environment variables
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	// Hash password
	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FullName:     "System Administrator",
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Created admin user: %s\n", admin.Email)
	return nil
}

// SeedCourses creates a small sample catalog
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Courses already exist, skipping...")
		return nil
	}

	courses := []model.Course{
		{
			CourseCode:  "CS101",
			CourseName:  "Introduction to Programming",
			Description: "Variables, control flow, functions and basic data structures.",
			Credits:     4,
			Status:      model.StatusActive,
		},
		{
			CourseCode:  "CS201",
			CourseName:  "Data Structures and Algorithms",
			Description: "Lists, trees, graphs, sorting and searching.",
			Credits:     4,
			Status:      model.StatusActive,
		},
		{
			CourseCode:  "MA110",
			CourseName:  "Discrete Mathematics",
			Description: "Logic, sets, relations, combinatorics.",
			Credits:     3,
			Status:      model.StatusActive,
		},
		{
			CourseCode:  "EN105",
			CourseName:  "Technical Writing",
			Description: "Clear writing for engineers.",
			Credits:     2,
			Status:      model.StatusActive,
		},
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d courses\n", len(courses))
	return nil
}

// SeedFaculty creates sample faculty members with login accounts
func (s *Seeder) SeedFaculty() error {
	var count int64
	if err := s.db.Model(&model.Faculty{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Faculty already exist, skipping...")
		return nil
	}

	faculties := []model.Faculty{
		{FacultyID: "FAC001", FullName: "Dr. Priya Sharma", Email: "priya.sharma@opencampus.edu", Department: "Computer Science", Status: model.StatusActive},
		{FacultyID: "FAC002", FullName: "Prof. Rohan Mehta", Email: "rohan.mehta@opencampus.edu", Department: "Mathematics", Status: model.StatusActive},
	}

	for i := range faculties {
		if err := s.db.Create(&faculties[i]).Error; err != nil {
			return err
		}
		if err := s.createLoginAccount(faculties[i].FacultyID, faculties[i].FullName, faculties[i].Email, model.RoleFaculty, faculties[i].ID); err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d faculty members\n", len(faculties))
	return nil
}

// SeedStudents creates sample students with login accounts
func (s *Seeder) SeedStudents() error {
	var count int64
	if err := s.db.Model(&model.Student{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Students already exist, skipping...")
		return nil
	}

	students := []model.Student{
		{StudentID: "STU0001", FullName: "Aarav Patel", Email: "aarav.patel@opencampus.edu", Program: "B.Tech Computer Science", Status: model.StatusActive},
		{StudentID: "STU0002", FullName: "Ishita Rao", Email: "ishita.rao@opencampus.edu", Program: "B.Tech Computer Science", Status: model.StatusActive},
		{StudentID: "STU0003", FullName: "Kabir Singh", Email: "kabir.singh@opencampus.edu", Program: "B.Sc Mathematics", Status: model.StatusActive},
	}

	for i := range students {
		if err := s.db.Create(&students[i]).Error; err != nil {
			return err
		}
		if err := s.createLoginAccount(students[i].StudentID, students[i].FullName, students[i].Email, model.RoleStudent, students[i].ID); err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d students\n", len(students))
	return nil
}

// SeedEnrollments enrolls the sample students and assigns grading faculty
func (s *Seeder) SeedEnrollments() error {
	var count int64
	if err := s.db.Model(&model.Enrollment{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Enrollments already exist, skipping...")
		return nil
	}

	var students []model.Student
	if err := s.db.Order("id").Find(&students).Error; err != nil {
		return err
	}
	var courses []model.Course
	if err := s.db.Order("id").Find(&courses).Error; err != nil {
		return err
	}
	var faculties []model.Faculty
	if err := s.db.Order("id").Find(&faculties).Error; err != nil {
		return err
	}
	if len(students) == 0 || len(courses) == 0 {
		log.Println("⏭️  No sample students or courses, skipping enrollments...")
		return nil
	}

	created := 0
	for i, student := range students {
		for j, course := range courses {
			// Spread students over courses rather than enrolling everyone everywhere
			if (i+j)%2 != 0 {
				continue
			}
			enrollment := model.Enrollment{
				StudentID: student.ID,
				CourseID:  course.ID,
				Status:    model.EnrollmentEnrolled,
			}
			if len(faculties) > 0 {
				facultyID := faculties[j%len(faculties)].ID
				enrollment.FacultyID = &facultyID
			}
			if err := s.db.Create(&enrollment).Error; err != nil {
				return err
			}
			created++
		}
	}

	log.Printf("✅ Created %d enrollments\n", created)
	return nil
}

// createLoginAccount pairs a profile row with a User. The seed password is
// the natural key; accounts are expected to change it on first login.
func (s *Seeder) createLoginAccount(username, fullName, email, role string, referenceID uint) error {
	passwordHash, err := auth.HashPassword(username)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Email:        email,
		Role:         role,
		ReferenceID:  &referenceID,
		Status:       model.StatusActive,
	}
	return s.db.Create(user).Error
}
