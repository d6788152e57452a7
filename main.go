package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"feedback-analysis/database"
	"feedback-analysis/handlers"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}
	database.InitDB(dbPath)

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "super_secret_key"
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("feedback_session", store))

	r.Static("/static", "./static")
	r.LoadHTMLGlob("templates/*")

	// Public routes
	r.GET("/register", handlers.RegisterPage)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)
	r.GET("/about", handlers.About)
	r.GET("/guide", handlers.Guide)

	// Content routes behind the login gate
	authed := r.Group("/")
	authed.Use(handlers.AuthRequired())
	{
		authed.GET("/", handlers.Home)
		authed.POST("/analyze_text", handlers.AnalyzeText)
		authed.POST("/analyze_file", handlers.AnalyzeFile)
		authed.POST("/analyze_csv", handlers.AnalyzeCSV)
		authed.GET("/history", handlers.History)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Starting Feedback Analytics Server on :" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
