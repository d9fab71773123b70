package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPCPort           string
	HTTPPort           string
	LandmarkServiceURL string
	CORSOrigins        string

	// Detection defaults applied to every new detector.
	EARThreshold      float64
	ConsecutiveFrames int
	WindowSize        int

	MaxConnections   int
	RateLimitPerMin  int
	MaxMessageSizeMB int
	LogLevel         string
	Environment      string

	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DSNForLog renders the DSN with the password masked for logging.
func (c *Config) DSNForLog() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode)
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func LoadConfig() *Config {
	// Load .env if present; fall back to the process environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		GRPCPort:           getEnv("GRPC_PORT", "50051"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LandmarkServiceURL: getEnv("LANDMARK_SERVICE_URL", "localhost:9000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		EARThreshold:       getEnvFloat("EAR_THRESHOLD", 0.25),
		ConsecutiveFrames:  getEnvInt("CONSECUTIVE_FRAMES", 20),
		WindowSize:         getEnvInt("WINDOW_SIZE", 10),
		MaxConnections:     getEnvInt("MAX_CONNECTIONS", 1000),
		RateLimitPerMin:    getEnvInt("RATE_PER_MIN", 1000),
		MaxMessageSizeMB:   getEnvInt("MAX_MESSAGE_SIZE_MB", 50),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		Environment:        getEnv("ENVIRONMENT", "production"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "drowsy_driver"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.DBPassword == "" {
		fmt.Println("WARNING: DB_PASSWORD is not set!")
	}
	if cfg.DBName == "" {
		fmt.Println("WARNING: DB_NAME is not set, using default: drowsy_driver")
		cfg.DBName = "drowsy_driver"
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
