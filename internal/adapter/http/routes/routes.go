package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/gradyrobinson2001-cloud/DustDashboard/docs" // swagger docs
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/handlers"
	repository2 "github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/persistence/repository"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/database"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/demo"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/intake"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	enquiryRepo, quoteRepo := buildStores()
	pricingRepo := repository2.NewPricingMemoryRepository(nil)

	enquiryUseCase := usecase.NewEnquiryUseCase(enquiryRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, enquiryRepo, pricingRepo)
	pricingUseCase := usecase.NewPricingUseCase(pricingRepo)

	queue := intake.NewQueue(enquiryUseCase, 0)
	queue.Start(ctx)

	simulator := demo.NewSimulator(enquiryUseCase, queue, demoInterval())

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := demo.Seed(ctx, enquiryRepo, quoteRepo); err != nil {
			log.Printf("Sample data seed failed: %v", err)
		}
	}

	enquiryHandler := handlers.NewEnquiryHandler(enquiryUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	submissionHandler := handlers.NewSubmissionHandler(queue)
	demoHandler := handlers.NewDemoHandler(simulator, ctx)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, enquiryHandler, quoteHandler, pricingHandler)
	addIntakeRoutes(v1, submissionHandler)
	addDemoRoutes(v1, demoHandler)
}

// buildStores picks the storage driver: in-memory by default, DynamoDB when
// STORAGE_DRIVER=dynamodb. The pricing catalog always lives in memory.
func buildStores() (interfaces.IEnquiryRepository, interfaces.IQuoteRepository) {
	if os.Getenv("STORAGE_DRIVER") == "dynamodb" {
		ddb, err := database.NewDynamoDBClient(context.Background())
		if err != nil {
			log.Fatalf("Failed to connect to DynamoDB: %v", err)
		}
		log.Printf("Using DynamoDB storage driver")
		return repository2.NewEnquiryDynamoRepository(ddb), repository2.NewQuoteDynamoRepository(ddb)
	}
	return repository2.NewEnquiryMemoryRepository(), repository2.NewQuoteMemoryRepository()
}

func demoInterval() time.Duration {
	raw := os.Getenv("DEMO_INTERVAL_SECONDS")
	if raw == "" {
		return demo.DefaultInterval
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("Ignoring invalid DEMO_INTERVAL_SECONDS=%q", raw)
		return demo.DefaultInterval
	}
	return time.Duration(secs) * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
