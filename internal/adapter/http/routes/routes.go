package routes

import (
	"context"
	"log"
	"os"

	_ "maintup/docs" // swagger registration, generated by swag
	"maintup/internal/adapter/http/handlers"
	"maintup/internal/adapter/http/middleware"
	"maintup/internal/adapter/persistence/repository"
	"maintup/internal/infrastructure/database"
	"maintup/internal/usecase"
	"maintup/internal/usecase/interfaces"
	"maintup/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "3000"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := pkg.GetenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	repo := newDocumentRepository()
	ledgerUseCase := usecase.NewLedgerUseCase(repo)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)

	gate := middleware.BearerAuth(os.Getenv("API_TOKEN"))

	root := router.Group("/")
	addPingRoutes(root)
	addLedgerRoutes(root, ledgerHandler, gate)
}

// newDocumentRepository picks the store driver: the JSON data file by
// default, DynamoDB when STORE_DRIVER=dynamo.
func newDocumentRepository() interfaces.IDocumentRepository {
	switch pkg.GetenvDefault("STORE_DRIVER", "file") {
	case "dynamo":
		ddb, err := database.NewDynamoClient(context.Background(), database.DynamoSettingsFromEnv())
		if err != nil {
			log.Fatalf("failed to connect to dynamodb: %v", err)
		}
		return repository.NewDocumentDynamoRepository(ddb)
	default:
		repo, err := repository.NewDocumentFileRepository(os.Getenv("DATA_FILE"))
		if err != nil {
			log.Fatalf("failed to open data file: %v", err)
		}
		return repo
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(pkg.GetenvDefault("CORS_ORIGIN", "*")))
}
