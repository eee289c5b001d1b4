package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL             string `yaml:"ttl"`
	Length          int    `yaml:"length"`
	MaxAttempts     int    `yaml:"max_attempts"`
	RateLimitWindow string `yaml:"rate_limit_window"`
	RateLimitMax    int    `yaml:"rate_limit_max"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeocodeConfig struct {
	CacheTTL string `yaml:"cache_ttl"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Casbin   CasbinConfig   `yaml:"casbin"`
	Logging  LoggingConfig  `yaml:"logging"`
	Geocode  GeocodeConfig  `yaml:"geocode"`
}

type Config struct {
	Port               string
	GinMode            string
	DSN                string
	MongoURI           string
	MongoDatabase      string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	JWTSecret          string
	JWTIssuer          string
	TokenTTL           time.Duration
	OTPTTL             time.Duration
	OTPLength          int
	OTPMaxAttempts     int
	OTPRateLimitWindow time.Duration
	OTPRateLimitMax    int
	TwilioSID          string
	TwilioToken        string
	TwilioFrom         string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	CasbinModelPath    string
	LogLevel           string
	LogFormat          string
	GeocodeCacheTTL    time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// the values that differ between deployments.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	rateWindow, err := time.ParseDuration(configFile.OTP.RateLimitWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP rate limit window: %w", err)
	}

	geocodeTTL := 24 * time.Hour
	if configFile.Geocode.CacheTTL != "" {
		geocodeTTL, err = time.ParseDuration(configFile.Geocode.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid geocode cache TTL: %w", err)
		}
	}

	return &Config{
		Port:               env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:            configFile.App.GinMode,
		DSN:                env("DATABASE_DSN", configFile.Database.DSN),
		MongoURI:           env("MONGO_URI", configFile.Mongo.URI),
		MongoDatabase:      env("MONGO_DATABASE", configFile.Mongo.Database),
		RedisAddr:          env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:      env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:            envInt("REDIS_DB", configFile.Redis.DB),
		JWTSecret:          env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:          configFile.JWT.Issuer,
		TokenTTL:           tokenTTL,
		OTPTTL:             otpTTL,
		OTPLength:          configFile.OTP.Length,
		OTPMaxAttempts:     configFile.OTP.MaxAttempts,
		OTPRateLimitWindow: rateWindow,
		OTPRateLimitMax:    configFile.OTP.RateLimitMax,
		TwilioSID:          env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:        env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:         env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		SMTPHost:           env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:           envInt("SMTP_PORT", configFile.SMTP.Port),
		SMTPUsername:       env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:       env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:           env("SMTP_FROM", configFile.SMTP.From),
		CasbinModelPath:    configFile.Casbin.ModelPath,
		LogLevel:           env("LOG_LEVEL", configFile.Logging.Level),
		LogFormat:          configFile.Logging.Format,
		GeocodeCacheTTL:    geocodeTTL,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
