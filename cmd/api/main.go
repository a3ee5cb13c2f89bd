package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ClinkThearly/research-tool-v2/db"
	"github.com/ClinkThearly/research-tool-v2/internal/handler"
	"github.com/ClinkThearly/research-tool-v2/internal/repository"
	"github.com/ClinkThearly/research-tool-v2/internal/review"
	"github.com/ClinkThearly/research-tool-v2/pkg/extractor"
)

const defaultExtractorURL = "https://pdf-slide-extractor-backend-dvandyke.replit.app"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepo := repository.NewArticleRepository(db.DB)
	articleHandler := handler.NewArticleHandler(articleRepo)

	extractorURL := os.Getenv("EXTRACTOR_URL")
	if extractorURL == "" {
		extractorURL = defaultExtractorURL
	}

	reviewHandler := handler.NewReviewHandler(extractor.NewClient(extractorURL), review.NewSession())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/articles", articleHandler.GetArticles)
	r.POST("/api/articles", articleHandler.CreateArticle)
	r.DELETE("/api/articles/:id", articleHandler.DeleteArticle)
	r.POST("/api/update-article-status", articleHandler.UpdateStatus)

	r.POST("/api/catalogue/upload", reviewHandler.Upload)
	r.GET("/api/catalogue/review", reviewHandler.GetReview)
	r.POST("/api/catalogue/review/next", reviewHandler.NextSlide)
	r.POST("/api/catalogue/review/prev", reviewHandler.PrevSlide)
	r.POST("/api/catalogue/review/discard", reviewHandler.Discard)
	r.PUT("/api/catalogue/review/slide", reviewHandler.EditSlide)
	r.POST("/api/catalogue/review/confirm-field", reviewHandler.ConfirmField)
	r.POST("/api/catalogue/review/confirm", reviewHandler.ConfirmSlide)

	r.GET("/health", articleHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
