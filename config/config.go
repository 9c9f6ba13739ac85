package config

import (
	"os"
	"strconv"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// JWT Authentication
	JWTSecretKey   string
	JWTExpiryHours int

	// Messaging
	CountryCode     string // international trunk code used when normalising local numbers
	WhatsAppBaseURL string

	// Bootstrap admin
	DefaultAdminName     string
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	return &Config{
		EnvType: getEnv("ENV_TYPE", "LOCAL"),

		// Database config
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "estateiq_db"),
		DBPort:     getEnv("DB_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "8080"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// JWT config, tokens are valid for 7 days by default
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", "estateiq-secret-key-change-in-production"),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 168),

		// Messaging config
		CountryCode:     getEnv("COUNTRY_CODE", "234"),
		WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),

		// Bootstrap admin config
		DefaultAdminName:     getEnv("DEFAULT_ADMIN_NAME", "Administrator"),
		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@estateiq.ng"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
