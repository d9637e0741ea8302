package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"hostelhelper/backend/internal/analytics"
	"hostelhelper/backend/internal/api/handler"
	"hostelhelper/backend/internal/api/middleware"
	"hostelhelper/backend/internal/chat"
	"hostelhelper/backend/internal/classifier"
	"hostelhelper/backend/internal/complaint"
	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/notify"
	"hostelhelper/backend/internal/session"
	"hostelhelper/backend/internal/storage"
	"hostelhelper/backend/internal/triage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.Student{},
		&models.Complaint{},
		&models.Escalation{},
		&models.FAQ{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting HostelHelper Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	if err := s.SeedFAQs(classifier.DefaultFAQs()); err != nil {
		log.Fatalf("Failed to seed FAQs: %v", err)
	}

	faqs, err := s.ListFAQs()
	if err != nil {
		log.Fatalf("Failed to load FAQs: %v", err)
	}

	if admin, err := s.FindAdmin(); err != nil {
		log.Printf("Warning: could not check for an admin account: %v", err)
	} else if admin == nil {
		log.Println("Warning: no admin account exists, create one with the admin CLI")
	}

	notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
	if err != nil {
		log.Printf("Warning: Telegram notifier disabled: %v", err)
	}

	var complaintNotifier complaint.Notifier
	if notifier != nil {
		complaintNotifier = notifier
	}
	complaints := complaint.NewService(s, complaintNotifier)
	sessions := session.NewProvider(s, cfg.JWTSecret)
	triageClient := triage.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !triageClient.Enabled() {
		log.Println("Warning: GEMINI_API_KEY not set, falling back to keyword classification")
	}
	engine := chat.NewEngine(classifier.New(faqs), triageClient, complaints)
	hub := chat.NewHub(rdb)
	complaints.Publisher = hub
	stats := analytics.NewService(s)

	go hub.Run(context.Background())
	go stats.Run(context.Background())

	r := gin.Default()
	h := handler.NewHandler(s, sessions, complaints, engine, hub, stats)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.GET("/faqs", h.ListFAQs)

		authed := api.Group("", middleware.RequireStudent(sessions))
		{
			authed.POST("/auth/logout", h.Logout)
			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
			authed.POST("/chat", h.PostMessage)
			authed.GET("/complaints", h.ListComplaints)
			authed.GET("/complaints/:id", h.GetComplaint)
			authed.PUT("/complaints/:id/status", h.UpdateComplaintStatus)
		}

		admin := api.Group("/admin", middleware.RequireAdmin(sessions))
		{
			admin.GET("/students", h.ListStudents)
			admin.GET("/complaints", h.ListComplaints)
			admin.PUT("/complaints/:id", h.UpdateComplaintFields)
			admin.GET("/escalations", h.ListEscalations)
			admin.GET("/escalations/:id", h.GetEscalation)
			admin.PUT("/escalations/:id", h.UpdateEscalationStatus)
			admin.GET("/analytics", h.Dashboard)
		}
	}

	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           ":" + cfg.AppPort,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
