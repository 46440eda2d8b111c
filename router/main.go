package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/config"
	"github.com/opencampus/sims-api/database"
	"github.com/opencampus/sims-api/handlers"
	activitylog_handlers "github.com/opencampus/sims-api/handlers/activitylog"
	auth_handlers "github.com/opencampus/sims-api/handlers/auth"
	course_handlers "github.com/opencampus/sims-api/handlers/course"
	dashboard_handlers "github.com/opencampus/sims-api/handlers/dashboard"
	enrollment_handlers "github.com/opencampus/sims-api/handlers/enrollment"
	faculty_handlers "github.com/opencampus/sims-api/handlers/faculty"
	grade_handlers "github.com/opencampus/sims-api/handlers/grade"
	notification_handlers "github.com/opencampus/sims-api/handlers/notification"
	student_handlers "github.com/opencampus/sims-api/handlers/student"
	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/auth"
	"github.com/opencampus/sims-api/utils/cache"
	"github.com/opencampus/sims-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store *database.GORMStore, getEnv *config.EnviornmentVariable) {
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "sims-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour, // Access token expires in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Initialize Redis cache for brute force protection
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Repositories and services
	repo := repository.NewRepository(store.GetDB())

	verifier := auth.NewPasswordVerifier()
	verifier.AllowLegacyPlaintext = getEnv.ALLOW_LEGACY_PASSWORDS

	notificationService := services.NewNotificationService(repo)
	authService := services.NewAuthService(repo, verifier)
	studentService := services.NewStudentService(repo)
	facultyService := services.NewFacultyService(repo)
	courseService := services.NewCourseService(repo)
	enrollmentService := services.NewEnrollmentService(repo, notificationService)
	gradeService := services.NewGradeService(repo, notificationService)
	dashboardService := services.NewDashboardService(repo)
	facultyDashboardService := services.NewFacultyDashboardService(repo)
	activityLogService := services.NewActivityLogService(repo)

	// Handlers
	authHandler := auth_handlers.NewAuthHandler(authService, jwtManager, bruteForceProtection)
	studentHandler := student_handlers.NewStudentHandler(studentService)
	facultyHandler := faculty_handlers.NewFacultyHandler(facultyService)
	courseHandler := course_handlers.NewCourseHandler(courseService)
	enrollmentHandler := enrollment_handlers.NewEnrollmentHandler(enrollmentService)
	gradeHandler := grade_handlers.NewGradeHandler(gradeService, authService)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(dashboardService, facultyDashboardService, authService)
	activityLogHandler := activitylog_handlers.NewActivityLogHandler(activityLogService)
	notificationHandler := notification_handlers.NewNotificationHandler(notificationService, authService)

	// Apply security middleware
	allowedOrigins := getEnv.ALLOWED_ORIGINS
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: allowedOrigins,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)
	authGroup.Post("/change-password", authMiddleware.Required(), authHandler.ChangePassword)

	// Student management (admin only)
	students := api.Group("/students", authMiddleware.Required(), authMiddleware.RequireAdmin())
	students.Get("/", studentHandler.List)
	students.Get("/:id", studentHandler.Get)
	students.Post("/", studentHandler.Create)
	students.Put("/:id", studentHandler.Update)
	students.Delete("/:id", studentHandler.Delete)
	students.Get("/:id/activity", activityLogHandler.ForStudent)

	// Faculty management (admin only)
	faculty := api.Group("/faculty", authMiddleware.Required(), authMiddleware.RequireAdmin())
	faculty.Get("/", facultyHandler.List)
	faculty.Get("/:id", facultyHandler.Get)
	faculty.Post("/", facultyHandler.Create)
	faculty.Put("/:id", facultyHandler.Update)
	faculty.Get("/:id/deletion-impact", facultyHandler.DeletionImpact)
	faculty.Delete("/:id", facultyHandler.Delete)

	// Course management (admin only)
	courses := api.Group("/courses", authMiddleware.Required(), authMiddleware.RequireAdmin())
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.Get)
	courses.Post("/", courseHandler.Create)
	courses.Put("/:id", courseHandler.Update)
	courses.Get("/:id/deletion-impact", courseHandler.DeletionImpact)
	courses.Delete("/:id", courseHandler.Delete)

	// Enrollment management (admin only)
	enrollments := api.Group("/enrollments", authMiddleware.Required(), authMiddleware.RequireAdmin())
	enrollments.Get("/", enrollmentHandler.List)
	enrollments.Get("/:id", enrollmentHandler.Get)
	enrollments.Post("/", enrollmentHandler.Create)
	enrollments.Put("/:id", enrollmentHandler.Update)
	enrollments.Delete("/:id", enrollmentHandler.Delete)

	// Activity log (admin only)
	activityLogs := api.Group("/activity-logs", authMiddleware.Required(), authMiddleware.RequireAdmin())
	activityLogs.Get("/", activityLogHandler.List)

	// Grading (faculty only)
	grading := api.Group("/grading", authMiddleware.Required(), authMiddleware.RequireRole(model.RoleFaculty))
	grading.Get("/courses/:courseId/roster", gradeHandler.Roster)
	grading.Post("/courses/:courseId/grades", gradeHandler.Save)

	// Role dashboards
	dashboard := api.Group("/dashboard", authMiddleware.Required())
	dashboard.Get("/admin", authMiddleware.RequireAdmin(), dashboardHandler.Admin)
	dashboard.Get("/student", authMiddleware.RequireRole(model.RoleStudent), dashboardHandler.Student)
	dashboard.Get("/student/grades", authMiddleware.RequireRole(model.RoleStudent), dashboardHandler.StudentGrades)
	dashboard.Get("/faculty", authMiddleware.RequireRole(model.RoleFaculty), dashboardHandler.Faculty)

	// Admin profile
	adminProfile := api.Group("/admin/profile", authMiddleware.Required(), authMiddleware.RequireAdmin())
	adminProfile.Get("/", dashboardHandler.AdminProfile)
	adminProfile.Put("/", dashboardHandler.UpdateAdminProfile)

	// Notifications (any authenticated role)
	notifications := api.Group("/notifications", authMiddleware.Required())
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
