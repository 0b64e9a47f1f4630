package app

import (
	"errors"
	"fmt"
	"time"

	"rabt_backend/database"
	"rabt_backend/internal/auth"
	"rabt_backend/internal/config"
	"rabt_backend/internal/handlers"
	"rabt_backend/internal/logger"
	"rabt_backend/internal/middleware"
	"rabt_backend/internal/models"
	"rabt_backend/internal/pkg/email"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/routes"
	"rabt_backend/internal/services"
	"rabt_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	// Startup sweep; expired tokens are also rejected at refresh time.
	if err := repositories.NewRefreshTokenRepository(gormDB).CleanExpired(); err != nil {
		logger.Warn("failed to clean expired refresh tokens", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := newEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, emailProvider)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, v)

	ginRouter := newGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// newEmailProvider returns the SMTP sender when mail is configured and a
// logging no-op otherwise, so unconfigured environments still work.
func newEmailProvider(cfg *config.Config) email.Provider {
	emailConfig := email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		SiteURL:   cfg.Site.BaseURL,
	}

	if !emailConfig.IsConfigured() {
		logger.Warn("SMTP is not configured, outgoing email will be logged and dropped")
		return email.NewNoopProvider()
	}

	provider, err := email.NewSMTPSender(emailConfig)
	if err != nil {
		logger.Warn("failed to initialize SMTP sender, falling back to no-op", "error", err)
		return email.NewNoopProvider()
	}
	return provider
}

func newGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Site.BaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	ginRouter.Use(cors.New(corsConfig))

	return ginRouter
}

// seedFirstAdmin creates the initial admin account from config. Admins
// are never self-registered.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("admin email or password not configured, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		result := tx.Where("email = ?", adminEmail).First(&existing)
		if result.Error == nil {
			logger.Info("admin user already exists, skipping creation", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		passwordHash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		adminUser := models.User{
			Email:        adminEmail,
			PasswordHash: passwordHash,
			Role:         models.UserRoleAdmin,
			IsVerified:   true,
		}
		if err := tx.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		adminProfile := models.Profile{
			UserID:   adminUser.ID,
			FullName: "Platform Admin",
			Status:   models.ProfileStatusApproved,
		}
		if err := tx.Create(&adminProfile).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		logger.Info("admin user seeded", "email", adminEmail)
		return nil
	})
}
