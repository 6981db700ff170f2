package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment (.env is loaded by
// godotenv/autoload in main).
type Config struct {
	Port int

	Backend struct {
		BaseURL string
		Timeout time.Duration
	}

	// CivilTimezone is the zone the backend expects for zone-less timestamps.
	CivilTimezone *time.Location

	Session struct {
		JWTSecret  string
		EmailClaim string
		CookieName string
	}

	Lock struct {
		RedisAddr     string
		RedisPassword string
		RedisDB       int
		TTL           time.Duration
	}

	DynamoDB struct {
		Region               string
		AccessKeyID          string
		SecretAccessKey      string
		Endpoint             string
		TransitionsTable     string
		ReconciliationsTable string
		// CreateTables creates missing tables on startup (local DynamoDB only).
		CreateTables bool
	}

	RefreshDelay time.Duration
}

// Load reads the configuration. Unset variables fall back to local-friendly defaults;
// malformed values are an error.
func Load() (*Config, error) {
	c := &Config{}
	var err error

	if c.Port, err = intEnv("PORT", 8080); err != nil {
		return nil, err
	}

	c.Backend.BaseURL = strings.TrimRight(getenvDefault("BACKEND_BASE_URL", "http://localhost:8081"), "/")
	if c.Backend.Timeout, err = durationEnv("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	tz := getenvDefault("CIVIL_TIMEZONE", "America/Bogota")
	if c.CivilTimezone, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("CIVIL_TIMEZONE %q: %w", tz, err)
	}

	c.Session.JWTSecret = os.Getenv("JWT_SECRET")
	c.Session.EmailClaim = getenvDefault("JWT_EMAIL_CLAIM", "email")
	c.Session.CookieName = getenvDefault("SESSION_COOKIE", "auth-token")

	c.Lock.RedisAddr = os.Getenv("REDIS_ADDR")
	c.Lock.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if c.Lock.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if c.Lock.TTL, err = durationEnv("LOCK_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	c.DynamoDB.Region = getenvDefault("AWS_REGION", "us-east-1")
	c.DynamoDB.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", "local")
	c.DynamoDB.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", "local")
	c.DynamoDB.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	c.DynamoDB.TransitionsTable = getenvDefault("TRANSITIONS_TABLE", "order_status_transitions")
	c.DynamoDB.ReconciliationsTable = getenvDefault("RECONCILIATIONS_TABLE", "material_reconciliations")
	if c.DynamoDB.CreateTables, err = boolEnv("DYNAMODB_CREATE_TABLES", false); err != nil {
		return nil, err
	}

	if c.RefreshDelay, err = durationEnv("REFRESH_DELAY", 0); err != nil {
		return nil, err
	}

	return c, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 10s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
