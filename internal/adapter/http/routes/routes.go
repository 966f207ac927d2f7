package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mantranwebapi/docs" // This will be auto-generated
	"mantranwebapi/internal/adapter/http/handlers"
	repository2 "mantranwebapi/internal/adapter/persistence/repository"
	"mantranwebapi/internal/infrastructure/config"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/infrastructure/session"
	"mantranwebapi/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg, err := config.Load(os.Getenv("TRACKER_CONFIG"), config.Default())
	if err != nil {
		log.Fatalf("Failed to load tracker config: %v", err)
	}
	vocab := cfg.Vocabulary()

	ds, err := dataservice.New(os.Getenv("DATA_SERVICE_URL"), os.Getenv("DATA_SERVICE_API_KEY"))
	if err != nil {
		log.Fatalf("Data service client not configured: %v", err)
	}

	sessionStore := session.NewStore(getenvDefault("SESSION_CACHE_PATH", ".mantranwebapi_sessions.json"))

	workItemRepo := repository2.NewWorkItemRestRepository(ds, vocab)
	timeEntryRepo := repository2.NewTimeEntryRestRepository(ds)
	userRepo := repository2.NewUserRestRepository(ds)
	reportRepo := repository2.NewReportRestRepository(ds)
	procedures := repository2.NewWorkItemProceduresRest(ds)

	sessionUseCase := usecase.NewSessionUseCase(userRepo, sessionStore)
	lifecycleUseCase := usecase.NewLifecycleUseCase(workItemRepo, timeEntryRepo, procedures, vocab)
	catalogUseCase := usecase.NewCatalogUseCase(workItemRepo)
	reportUseCase := usecase.NewReportUseCase(workItemRepo, timeEntryRepo, reportRepo, vocab, cfg.Report)

	authHandler := handlers.NewAuthHandler(sessionUseCase)
	taskHandler := handlers.NewTaskHandler(lifecycleUseCase)
	screenHandler := handlers.NewScreenHandler(catalogUseCase)
	dashboardHandler := handlers.NewDashboardHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackerRoutes(v1, sessionUseCase, authHandler, taskHandler, screenHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
