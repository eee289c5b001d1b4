package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/config"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/auth"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/database"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/events"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/notifications"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/repositories"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	DB          *gorm.DB
	MongoDB     *mongo.Database
	RedisClient *redis.Client

	// Repositories
	UserRepo     domain.UserRepository
	MechanicRepo domain.MechanicRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	SMSSender   domain.NotificationSender
	EmailSender domain.NotificationSender
	Geocoder    domain.Geocoder
	EventBus    domain.EventBus
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	MechanicSvc *services.MechanicService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabases(); err != nil {
		return nil, err
	}
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabases() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	mdb, err := database.OpenMongo(c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return err
	}
	if err := database.EnsureMechanicIndexes(mdb); err != nil {
		return err
	}
	c.MongoDB = mdb

	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.MechanicRepo = repositories.NewMechanicRepository(c.MongoDB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.SMSSender = notifications.NewTwilioSender(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom)
	c.EmailSender = notifications.NewSMTPSender(c.Config.SMTPHost, c.Config.SMTPPort,
		c.Config.SMTPUsername, c.Config.SMTPPassword, c.Config.SMTPFrom)
	c.Geocoder = services.NewGeocodingService(c.RedisClient, c.Config.GeocodeCacheTTL)
	c.EventBus = events.NewRedisBus(c.RedisClient, "")

	otpConfig := services.OTPConfig{
		Length:          c.Config.OTPLength,
		TTL:             c.Config.OTPTTL,
		MaxAttempts:     c.Config.OTPMaxAttempts,
		RateLimitWindow: c.Config.OTPRateLimitWindow,
		RateLimitMax:    c.Config.OTPRateLimitMax,
	}
	c.OTPSvc = services.NewOTPService(c.SMSSender, c.EmailSender, c.RedisClient, otpConfig, c.Logger)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc)
	c.MechanicSvc = services.NewMechanicService(c.MechanicRepo, c.UserRepo, c.Geocoder, c.EventBus, c.Logger)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
