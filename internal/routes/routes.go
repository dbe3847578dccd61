package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/config"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-karte/internal/infra/repository"
	"github.com/BruksfildServices01/salon-karte/internal/metrics"
	"github.com/BruksfildServices01/salon-karte/internal/middleware"
	"github.com/BruksfildServices01/salon-karte/internal/store"
	"github.com/BruksfildServices01/salon-karte/internal/timezone"
	ucAccount "github.com/BruksfildServices01/salon-karte/internal/usecase/account"
	ucClient "github.com/BruksfildServices01/salon-karte/internal/usecase/client"
	ucMeasurement "github.com/BruksfildServices01/salon-karte/internal/usecase/measurement"
	ucVisit "github.com/BruksfildServices01/salon-karte/internal/usecase/visit"
)

// Deps are the process singletons built in main.
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Sessions *auth.Service
	Audit    *audit.Dispatcher
	Metrics  *metrics.Registry
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// REPOSITORIES
	// ======================================================
	userRepo := infraRepo.NewUserStoreRepository(d.Store)
	clientRepo := infraRepo.NewClientStoreRepository(d.Store)
	visitRepo := infraRepo.NewVisitStoreRepository(d.Store)
	measurementRepo := infraRepo.NewMeasurementStoreRepository(d.Store)
	auditRepo := infraRepo.NewAuditLogStoreRepository(d.Store)

	// ======================================================
	// USE CASES
	// ======================================================
	signInUC := ucAccount.NewSignIn(d.Sessions, userRepo, d.Audit)
	signUpUC := ucAccount.NewSignUp(d.Sessions, userRepo, d.Audit, cfg.CheckEmailDomain)
	signOutUC := ucAccount.NewSignOut(d.Sessions, d.Audit)
	loadProfileUC := ucAccount.NewLoadProfile(d.Sessions, userRepo, d.Audit)

	createClientUC := ucClient.NewCreateClient(clientRepo, userRepo, d.Audit)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, userRepo, d.Audit)

	createVisitUC := ucVisit.NewCreateVisit(visitRepo, clientRepo, d.Audit)
	updateVisitUC := ucVisit.NewUpdateVisit(visitRepo, d.Audit)

	listMeasurementsUC := ucMeasurement.NewListMeasurements(measurementRepo, loc, d.Store.Now)
	createMeasurementUC := ucMeasurement.NewCreateMeasurement(measurementRepo, clientRepo, d.Audit, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, d.Sessions, signInUC, signUpUC, signOutUC)
	meHandler := handlers.NewMeHandler(loadProfileUC)
	staffHandler := handlers.NewStaffHandler(userRepo)
	clientHandler := handlers.NewClientHandler(clientRepo, createClientUC, updateClientUC)
	visitHandler := handlers.NewVisitHandler(visitRepo, createVisitUC, updateVisitUC)
	measurementHandler := handlers.NewMeasurementHandler(listMeasurementsUC, createMeasurementUC, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/sign-in", authHandler.SignIn)
		api.POST("/auth/sign-up", authHandler.SignUp)
		api.POST("/auth/sign-out", authHandler.SignOut)
		api.GET("/auth/session", authHandler.Session)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, d.Sessions))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/staff", middleware.RequireRole(string(karte.RoleAdmin)), staffHandler.List)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/names", clientHandler.Names)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)

			secured.GET("/visits", visitHandler.List)
			secured.POST("/visits", visitHandler.Create)
			secured.PATCH("/visits/:id", visitHandler.Update)
			secured.GET("/visits/service-menus", visitHandler.ServiceMenus)

			secured.GET("/measurements", measurementHandler.List)
			secured.POST("/measurements", measurementHandler.Create)
			secured.GET("/measurements/export", measurementHandler.Export)

			secured.GET("/audit-logs", middleware.RequireRole(string(karte.RoleAdmin)), auditLogsHandler.List)
		}
	}
}
