package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/textanalysis"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	recorder := metrics.NewRecorder()

	// Initialize database (optional)
	var db *gorm.DB
	var analysisRepo repositories.AnalysisRepository
	if cfg.Database.Enabled {
		var err error
		db, err = config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		analysisRepo = repositories.NewAnalysisRepository(db)
		log.Println("✅ Analysis history enabled")
	} else {
		log.Println("ℹ️  Analysis history disabled")
	}

	// Initialize services
	stopWords := textanalysis.DefaultStopWords().With(cfg.Analyzer.ExtraStopWords...)
	analyzer := textanalysis.NewAnalyzer(stopWords)
	log.Printf("✅ Analyzer initialized with %d stop words\n", stopWords.Len())

	documentParser := services.NewDocumentParserService(services.NewPDFParserService())
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	analyzerService := services.NewAnalyzerService(analyzer, documentParser, analysisRepo, recorder)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI (optional)
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		var err error
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.RetryInitialDelay)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("ℹ️  GEMINI_API_KEY not set, AI suggestions disabled")
	}
	suggestionService := services.NewSuggestionService(geminiService, cfg.Gemini.RetryMaxAttempts)

	// Initialize Handlers
	routes := handlers.Routes{
		Analyze:    handlers.NewAnalyzeHandler(uploadService, analyzerService, recorder),
		Suggestion: handlers.NewSuggestionHandler(suggestionService, recorder),
		History:    handlers.NewHistoryHandler(analysisRepo),
		Metrics:    adaptor.HTTPHandler(recorder.Handler()),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxBodySize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupRoutes(app, routes)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
