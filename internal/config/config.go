package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	FallbackScopeGlobal        = "global"
	FallbackScopePerCollection = "per_collection"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Security  SecurityConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
	SeedsPath       string
}

// AuthConfig describes how tokens issued by the external identity provider are verified.
// Only the public half of the keypair is needed in production; the private key is kept
// for development so tokens can be minted locally.
type AuthConfig struct {
	Issuer     string
	Audience   string
	PublicKey  *rsa.PublicKey
	PrivateKey *rsa.PrivateKey
	ClockSkew  time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DashboardConfig struct {
	// ViewFallbackScopes maps a collection name to the fallback scope its page-level view applies.
	ViewFallbackScopes map[string]string
	SeedingEnabled     bool
	SeedTransactions   int
	// SessionIdleTTL is how long an owner's in-memory dashboard survives without requests
	SessionIdleTTL time.Duration
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "dashboard_user"),
			Password:        getEnv("DB_PASSWORD", "dashboard_password"),
			Name:            getEnv("DB_NAME", "finance_dashboard"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("DB_SEEDS_PATH", "db/seeds"),
		},
		Auth: AuthConfig{
			Issuer:    getEnv("AUTH_ISSUER", "finance-dashboard-idp"),
			Audience:  getEnv("AUTH_AUDIENCE", "authenticated"),
			ClockSkew: getDurationEnv("AUTH_CLOCK_SKEW", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Dashboard: DashboardConfig{
			ViewFallbackScopes: map[string]string{
				"accounts":     getScopeEnv("VIEW_FALLBACK_SCOPE_ACCOUNTS", FallbackScopePerCollection),
				"transactions": getScopeEnv("VIEW_FALLBACK_SCOPE_TRANSACTIONS", FallbackScopeGlobal),
				"goals":        getScopeEnv("VIEW_FALLBACK_SCOPE_GOALS", FallbackScopeGlobal),
			},
			SeedingEnabled:   getBoolEnv("DASHBOARD_SEEDING_ENABLED", false),
			SeedTransactions: getIntEnv("DASHBOARD_SEED_TRANSACTIONS", 40),
			SessionIdleTTL:   getDurationEnv("DASHBOARD_SESSION_IDLE_TTL", 30*time.Minute),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.Auth.PrivateKey, config.Auth.PublicKey, err = config.loadAuthKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load auth keys: %w", err)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// ViewScope returns the fallback scope configured for a collection's page-level view
func (c *DashboardConfig) ViewScope(collection string) string {
	if scope, ok := c.ViewFallbackScopes[collection]; ok {
		return scope
	}
	return FallbackScopeGlobal
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getScopeEnv(key, defaultValue string) string {
	value := strings.ToLower(getEnv(key, defaultValue))
	if value != FallbackScopeGlobal && value != FallbackScopePerCollection {
		slog.Warn("unknown fallback scope, using default",
			"key", key,
			"value", value,
			"default", defaultValue)
		return defaultValue
	}
	return value
}

// loadAuthKeys loads the identity provider keys
// Priority order:
// 1. AUTH_PUBLIC_KEY (and optionally AUTH_PRIVATE_KEY) base64 PEM env vars
// 2. In production a missing public key is an error
// 3. Otherwise a keypair is generated so tokens can be minted locally
func (c *Config) loadAuthKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("AUTH_PUBLIC_KEY")
	privateKeyB64 := os.Getenv("AUTH_PRIVATE_KEY")

	if publicKeyB64 != "" {
		slog.Info("loading identity provider public key from environment")
		return loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("AUTH_PUBLIC_KEY environment variable must be set in production environments")
	}

	slog.Info("non-production environment: generating RSA keypair for locally issued tokens")
	return GenerateRSAKeyPair()
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode AUTH_PUBLIC_KEY: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	if privateKeyB64 == "" {
		return nil, publicKey, nil
	}

	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode AUTH_PRIVATE_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return privateKey, publicKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}

	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
