package routes

import (
	"guard-ops-backend/internal/api/handlers"
	"guard-ops-backend/internal/api/middleware"
	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/auth"
	"guard-ops-backend/internal/config"
	"guard-ops-backend/internal/repository"
	"guard-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	installationRepo := repository.NewInstallationRepository(db)
	serviceRoleRepo := repository.NewServiceRoleRepository(db)
	guardRepo := repository.NewGuardRepository(db)
	postRepo := repository.NewOperationalPostRepository(db)
	entryRepo := repository.NewScheduleEntryRepository(db)
	pendingRepo := repository.NewPendingCoverageRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	extraShiftRepo := repository.NewExtraShiftRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Audit trail shared by the scheduling core
	auditor := audit.NewRecorder(auditLogRepo)

	// Initialize services
	clientService := service.NewClientService(clientRepo, validator)
	installationService := service.NewInstallationService(installationRepo, clientRepo, postRepo, serviceRoleRepo, validator)
	serviceRoleService := service.NewServiceRoleService(serviceRoleRepo, validator)
	guardService := service.NewGuardService(guardRepo, validator)
	postService := service.NewOperationalPostService(postRepo, installationRepo, serviceRoleRepo, guardRepo, validator)
	scheduleService := service.NewScheduleGeneratorService(postRepo, entryRepo, auditor)
	attendanceService := service.NewAttendanceService(entryRepo, postRepo, extraShiftRepo, auditor, validator)
	coverageService := service.NewCoverageDetectorService(postRepo, entryRepo, pendingRepo, assignmentRepo, auditor)
	coverageService.SetHighPriorityWindow(cfg.CoverageHighPriorityHours)
	assignmentService := service.NewAssignmentEngineService(pendingRepo, postRepo, guardRepo, assignmentRepo, auditor)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	clientHandler := handlers.NewClientHandler(clientService)
	installationHandler := handlers.NewInstallationHandler(installationService)
	serviceRoleHandler := handlers.NewServiceRoleHandler(serviceRoleService)
	guardHandler := handlers.NewGuardHandler(guardService)
	postHandler := handlers.NewOperationalPostHandler(postService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	coverageHandler := handlers.NewCoverageHandler(coverageService, assignmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
		}

		installations := v1.Group("/installations")
		{
			installations.POST("", installationHandler.CreateInstallation)
			installations.GET("", installationHandler.ListInstallations)
			installations.GET("/:id", installationHandler.GetInstallation)
			installations.PUT("/:id", installationHandler.UpdateInstallation)
			installations.GET("/:id/posts", postHandler.ListPostsByInstallation)
		}

		serviceRoles := v1.Group("/service-roles")
		{
			serviceRoles.POST("", serviceRoleHandler.CreateServiceRole)
			serviceRoles.GET("", serviceRoleHandler.ListServiceRoles)
			serviceRoles.GET("/:id", serviceRoleHandler.GetServiceRole)
			serviceRoles.PUT("/:id", serviceRoleHandler.UpdateServiceRole)
		}

		guards := v1.Group("/guards")
		{
			guards.POST("", guardHandler.CreateGuard)
			guards.GET("", guardHandler.ListGuards)
			guards.GET("/:id", guardHandler.GetGuard)
			guards.PUT("/:id", guardHandler.UpdateGuard)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeactivatePost)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.POST("/generate", scheduleHandler.GenerateMonth)
			schedules.POST("/generate-batch", scheduleHandler.GenerateBatch)
			schedules.GET("/:postID/:year/:month", scheduleHandler.GetMonth)
		}

		attendance := v1.Group("/attendance")
		{
			attendance.POST("/entries/:id/mark", attendanceHandler.MarkAttendance)
			attendance.POST("/entries/:id/undo", attendanceHandler.UndoAttendance)
			attendance.POST("/extra-shift", attendanceHandler.MarkExtraShift)
		}

		coverage := v1.Group("/coverage")
		{
			coverage.POST("/detect", coverageHandler.Detect)
			coverage.GET("/pending", coverageHandler.ListPending)
			coverage.POST("/auto-assign", coverageHandler.AutoAssign)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("/:id/finish", assignmentHandler.FinishAssignment)
			assignments.POST("/:id/cancel", assignmentHandler.CancelAssignment)
		}
	}

	return router
}
