package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jmpanasiti/rda-platform-api/internal/config"
	"github.com/jmpanasiti/rda-platform-api/internal/handler"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/middleware"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
	"github.com/jmpanasiti/rda-platform-api/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis/FileStore
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, files *infra.FileStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	sinisterRepo := repository.NewSinisterRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	licenseRepo := repository.NewDriverLicenseRepository(db)
	regTx := repository.NewRegistrationTx(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	userSvc := service.NewUserService(userRepo, licenseRepo)
	authSvc := service.NewAuthService(userRepo, regTx, userSvc, cfg)
	licenseSvc := service.NewDriverLicenseService(licenseRepo, files)
	orgSvc := service.NewOrganizationService(orgRepo, branchRepo)
	branchSvc := service.NewBranchService(branchRepo, orgRepo, userRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, files)
	requestSvc := service.NewRequestService(requestRepo)
	sinisterSvc := service.NewSinisterService(sinisterRepo, files)
	budgetSvc := service.NewBudgetService(budgetRepo, files)
	purchaseOrderSvc := service.NewPurchaseOrderService(purchaseOrderRepo)
	workOrderSvc := service.NewWorkOrderService(workOrderRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	myFleetSvc := service.NewMyFleetService(vehicleRepo, userRepo)
	myBillsSvc := service.NewMyBillsService(purchaseOrderRepo)
	myReportSvc := service.NewMyReportService(vehicleRepo, userRepo)
	operationsSvc := service.NewOperationsService(requestRepo, sinisterRepo, vehicleRepo, files, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc, licenseSvc)
	orgsH := handler.NewOrganizationsHandler(orgSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	requestsH := handler.NewRequestsHandler(requestSvc)
	sinistersH := handler.NewSinistersHandler(sinisterSvc)
	budgetsH := handler.NewBudgetsHandler(budgetSvc)
	purchaseOrdersH := handler.NewPurchaseOrdersHandler(purchaseOrderSvc)
	workOrdersH := handler.NewWorkOrdersHandler(workOrderSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)
	myFleetH := handler.NewMyFleetHandler(myFleetSvc)
	myBillsH := handler.NewMyBillsHandler(myBillsSvc)
	myReportH := handler.NewMyReportHandler(myReportSvc)
	operationsH := handler.NewOperationsHandler(operationsSvc)

	// Role groups used across the route table.
	admins := model.AdminRoles
	superadminOnly := []model.Role{model.RoleSuperadmin}
	adminsAndSupermanager := append(append([]model.Role{}, admins...), model.RoleSupermanager)
	adminsAndManagers := append(append([]model.Role{}, admins...), model.ManagerRoles...)
	everyone := model.AllRoles

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// First superadmin bootstrap — public but refused once one exists
	r.POST("/v1/users/first_superadmin", usersH.CreateFirstSuperadmin)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/info", middleware.RequireRole(everyone...), authH.Info)
		v1.GET("/auth/token", middleware.RequireRole(everyone...), authH.Renew)

		users := v1.Group("/users")
		{
			users.POST("", middleware.RequireRole(admins...), usersH.Create)
			users.GET("", middleware.RequireRole(admins...), usersH.List)
			users.GET("/:id", middleware.RequireRole(admins...), usersH.Get)
			// Non-admins may only edit themselves; the service enforces it.
			users.PUT("/:id", middleware.RequireRole(everyone...), usersH.Update)
			users.DELETE("/:id", middleware.RequireRole(admins...), usersH.Delete)
			users.PUT("/:id/activate", middleware.RequireRole(admins...), usersH.Activate)
			users.PUT("/:id/deactivate", middleware.RequireRole(admins...), usersH.Deactivate)

			// Driver licenses are owner-only regardless of role.
			users.POST("/:id/driver-licenses", middleware.RequireRole(everyone...), usersH.UploadLicense)
			users.GET("/:id/driver-licenses/:license_id", middleware.RequireRole(everyone...), usersH.GetLicense)
			users.GET("/:id/driver-licenses/:license_id/download", middleware.RequireRole(everyone...), usersH.DownloadLicense)
		}

		orgs := v1.Group("/organizations")
		{
			orgs.POST("", middleware.RequireRole(admins...), orgsH.Create)
			orgs.GET("", middleware.RequireRole(admins...), orgsH.List)
			orgs.GET("/:id", middleware.RequireRole(everyone...), orgsH.Get)
			orgs.PUT("/:id", middleware.RequireRole(adminsAndSupermanager...), orgsH.Update)
			orgs.DELETE("/:id", middleware.RequireRole(superadminOnly...), orgsH.Delete)
			orgs.GET("/:id/branches", middleware.RequireRole(admins...), orgsH.Branches)
		}

		branches := v1.Group("/branches")
		{
			branches.POST("", middleware.RequireRole(adminsAndSupermanager...), branchesH.Create)
			branches.GET("", middleware.RequireRole(adminsAndSupermanager...), branchesH.List)
			branches.GET("/:id", middleware.RequireRole(admins...), branchesH.Get)
			branches.PUT("/:id", middleware.RequireRole(adminsAndSupermanager...), branchesH.Update)
			branches.DELETE("/:id", middleware.RequireRole(admins...), branchesH.Delete)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", middleware.RequireRole(admins...), vehiclesH.Create)
			vehicles.GET("", middleware.RequireRole(admins...), vehiclesH.List)
			vehicles.GET("/:id", middleware.RequireRole(everyone...), vehiclesH.Get)
			vehicles.PUT("/:id", middleware.RequireRole(adminsAndSupermanager...), vehiclesH.Update)
			vehicles.DELETE("/:id", middleware.RequireRole(superadminOnly...), vehiclesH.Delete)
			vehicles.PUT("/:id/activate", middleware.RequireRole(admins...), vehiclesH.Activate)
			vehicles.PUT("/:id/deactivate", middleware.RequireRole(admins...), vehiclesH.Deactivate)

			// Attached documents: policy, idcard, auth_idcard, title
			vehicles.POST("/:id/:doc", middleware.RequireRole(everyone...), vehiclesH.UploadDoc)
			vehicles.GET("/:id/:doc/:file_name", middleware.RequireRole(admins...), vehiclesH.DownloadDoc)
			vehicles.DELETE("/:id/:doc/:file_name", middleware.RequireRole(admins...), vehiclesH.DeleteDoc)
		}

		requests := v1.Group("/requests", middleware.RequireRole(admins...))
		{
			requests.POST("", requestsH.Create)
			requests.GET("", requestsH.List)
			requests.GET("/:id", requestsH.Get)
			requests.PUT("/:id", requestsH.Update)
			requests.DELETE("/:id", requestsH.Delete)
		}

		sinisters := v1.Group("/sinisters")
		{
			sinisters.POST("", middleware.RequireRole(admins...), sinistersH.Create)
			sinisters.GET("", middleware.RequireRole(admins...), sinistersH.List)
			sinisters.GET("/:id", middleware.RequireRole(admins...), sinistersH.Get)
			sinisters.PUT("/:id", middleware.RequireRole(adminsAndSupermanager...), sinistersH.Update)
			sinisters.DELETE("/:id", middleware.RequireRole(superadminOnly...), sinistersH.Delete)

			sinisters.POST("/:id/files", middleware.RequireRole(everyone...), sinistersH.UploadFile)
			sinisters.GET("/:id/files/:file_name", middleware.RequireRole(everyone...), sinistersH.DownloadFile)
			sinisters.DELETE("/:id/files/:file_name", middleware.RequireRole(admins...), sinistersH.DeleteFile)
		}

		budgets := v1.Group("/budgets", middleware.RequireRole(admins...))
		{
			budgets.POST("", budgetsH.Create)
			budgets.GET("", budgetsH.List)
			budgets.GET("/:id", budgetsH.Get)
			budgets.PUT("/:id", budgetsH.Update)
			budgets.DELETE("/:id", budgetsH.Delete)
			budgets.POST("/:id/upload", budgetsH.Upload)
			budgets.GET("/:id/download", budgetsH.Download)
		}

		purchaseOrders := v1.Group("/purchase_orders", middleware.RequireRole(admins...))
		{
			purchaseOrders.POST("", purchaseOrdersH.Create)
			purchaseOrders.GET("", purchaseOrdersH.List)
			purchaseOrders.GET("/:id", purchaseOrdersH.Get)
			purchaseOrders.PUT("/:id", purchaseOrdersH.Update)
			purchaseOrders.DELETE("/:id", purchaseOrdersH.Delete)
		}

		workOrders := v1.Group("/work_orders", middleware.RequireRole(admins...))
		{
			workOrders.POST("", workOrdersH.Create)
			workOrders.GET("", workOrdersH.List)
			workOrders.GET("/:id", workOrdersH.Get)
			workOrders.PUT("/:id", workOrdersH.Update)
			workOrders.DELETE("/:id", workOrdersH.Delete)
		}

		notifications := v1.Group("/notifications", middleware.RequireRole(everyone...))
		{
			notifications.POST("", notificationsH.Create)
			notifications.GET("", notificationsH.List)
			notifications.GET("/:id", notificationsH.Get)
			notifications.POST("/filter", notificationsH.Filter)
			notifications.PUT("/:id/read", notificationsH.MarkRead)
			notifications.DELETE("/:id", notificationsH.Delete)
		}

		myFleet := v1.Group("/my-fleet/:branch_id")
		{
			fleetVehicles := myFleet.Group("/vehicles")
			{
				fleetVehicles.GET("", middleware.RequireRole(adminsAndManagers...), myFleetH.ListVehicles)
				fleetVehicles.GET("/:vehicle_id", middleware.RequireRole(everyone...), myFleetH.GetVehicle)
				fleetVehicles.POST("", middleware.RequireRole(adminsAndManagers...), myFleetH.CreateVehicle)
				fleetVehicles.PUT("/:vehicle_id", middleware.RequireRole(adminsAndManagers...), myFleetH.UpdateVehicle)
				fleetVehicles.DELETE("/:vehicle_id", middleware.RequireRole(adminsAndManagers...), myFleetH.DeleteVehicle)
				fleetVehicles.PUT("/:vehicle_id/activate", middleware.RequireRole(adminsAndManagers...), myFleetH.ActivateVehicle)
				fleetVehicles.PUT("/:vehicle_id/deactivate", middleware.RequireRole(adminsAndManagers...), myFleetH.DeactivateVehicle)
			}
			fleetUsers := myFleet.Group("/users")
			{
				fleetUsers.GET("", middleware.RequireRole(adminsAndManagers...), myFleetH.ListUsers)
				fleetUsers.GET("/:user_id", middleware.RequireRole(everyone...), myFleetH.GetUser)
				fleetUsers.POST("", middleware.RequireRole(adminsAndManagers...), myFleetH.CreateUser)
				fleetUsers.PUT("/:user_id", middleware.RequireRole(adminsAndManagers...), myFleetH.UpdateUser)
				fleetUsers.DELETE("/:user_id", middleware.RequireRole(adminsAndManagers...), myFleetH.DeleteUser)
				fleetUsers.PUT("/:user_id/activate", middleware.RequireRole(adminsAndManagers...), myFleetH.ActivateUser)
				fleetUsers.PUT("/:user_id/deactivate", middleware.RequireRole(adminsAndManagers...), myFleetH.DeactivateUser)
			}
		}

		myBills := v1.Group("/my_bills/:branch_id/purchase_orders", middleware.RequireRole(adminsAndManagers...))
		{
			myBills.GET("", myBillsH.List)
			myBills.GET("/:order_id", myBillsH.Get)
			myBills.POST("", myBillsH.Create)
			myBills.PUT("/:order_id", myBillsH.Update)
			myBills.DELETE("/:order_id", myBillsH.Delete)
		}

		myReport := v1.Group("/my-report/:branch_id", middleware.RequireRole(adminsAndManagers...))
		{
			myReport.GET("/vehicles", myReportH.ActiveVehicles)
			myReport.GET("/vehicles_with_expenses", myReportH.VehiclesWithExpenses)
			myReport.GET("/users_with_expenses", myReportH.UsersWithExpenses)
		}

		operations := v1.Group("/operations/:branch_id")
		{
			opRequests := operations.Group("/requests")
			{
				opRequests.GET("", middleware.RequireRole(everyone...), operationsH.ListRequests)
				opRequests.POST("", middleware.RequireRole(everyone...), operationsH.CreateRequest)
				opRequests.GET("/:request_id", middleware.RequireRole(everyone...), operationsH.GetRequest)
				opRequests.PUT("/:request_id/approve", middleware.RequireRole(everyone...), operationsH.ApproveRequest)
				opRequests.PUT("/:request_id", middleware.RequireRole(adminsAndManagers...), operationsH.UpdateRequest)
				opRequests.DELETE("/:request_id", middleware.RequireRole(adminsAndManagers...), operationsH.DeleteRequest)

				opRequests.POST("/:request_id/files", middleware.RequireRole(everyone...), operationsH.UploadTireImage)
				opRequests.GET("/:request_id/files/:file_name", middleware.RequireRole(everyone...), operationsH.DownloadTireImage)
				opRequests.DELETE("/:request_id/files/:file_name", middleware.RequireRole(adminsAndManagers...), operationsH.DeleteTireImage)
			}
			opSinisters := operations.Group("/sinisters")
			{
				opSinisters.GET("", middleware.RequireRole(everyone...), operationsH.ListSinisters)
				opSinisters.POST("", middleware.RequireRole(everyone...), operationsH.CreateSinister)
				opSinisters.GET("/:sinister_id", middleware.RequireRole(everyone...), operationsH.GetSinister)
				opSinisters.PUT("/:sinister_id/approve", middleware.RequireRole(adminsAndManagers...), operationsH.ApproveSinister)
				opSinisters.PUT("/:sinister_id", middleware.RequireRole(everyone...), operationsH.UpdateSinister)
				opSinisters.DELETE("/:sinister_id", middleware.RequireRole(adminsAndManagers...), operationsH.DeleteSinister)

				opSinisters.POST("/:sinister_id/files", middleware.RequireRole(everyone...), operationsH.UploadSinisterFile)
				opSinisters.GET("/:sinister_id/files/:file_name", middleware.RequireRole(everyone...), operationsH.DownloadSinisterFile)
				opSinisters.DELETE("/:sinister_id/files/:file_name", middleware.RequireRole(adminsAndManagers...), operationsH.DeleteSinisterFile)
			}
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
