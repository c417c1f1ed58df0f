package config

import (
	"errors"
	"fmt"
	"time"

	"blog-service/internal/infrastructure"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"golang.org/x/crypto/bcrypt"
)

const defaultDatabase = "blog"

type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	SecretKey       string
	AccessTokenTTL  time.Duration
	BcryptCost      int
	ConnectTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogPretty       bool
}

// Load reads configuration from the process environment, after loading a
// .env file from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            infrastructure.GetEnvAsString("PORT", "5000"),
		MongoURI:        infrastructure.GetEnvAsString("MONGODB_URI", ""),
		SecretKey:       infrastructure.GetEnvAsString("SECRET_KEY", ""),
		AccessTokenTTL:  infrastructure.GetEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		BcryptCost:      infrastructure.GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		ConnectTimeout:  infrastructure.GetEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		ShutdownTimeout: infrastructure.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        infrastructure.GetEnvAsString("LOG_LEVEL", "info"),
		LogPretty:       infrastructure.GetEnvAsBool("LOG_PRETTY", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	db, err := databaseName(cfg.MongoURI, infrastructure.GetEnvAsString("MONGODB_DATABASE", ""))
	if err != nil {
		return nil, err
	}
	cfg.MongoDatabase = db
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	return errors.Join(errs...)
}

// databaseName prefers an explicit override, then the database named in
// the URI path, then the default.
func databaseName(uri, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid MONGODB_URI: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return defaultDatabase, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
