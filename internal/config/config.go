package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	CORSAllowedOrigins string

	// SimulationSeed fixes the sampler seed when SimulationSeedSet is true
	SimulationSeed    int64
	SimulationSeedSet bool
}

// Load reads .env (if present) and the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	seed, seedSet := lookupEnvInt64("SIM_SEED")

	return &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DB", "greenmind"),
		RedisAddr:          redisAddr(getEnv("REDIS_URI", "localhost:6379")),
		HTTPPort:           getEnv("PORT", "8080"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "password123"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		SimulationSeed:     seed,
		SimulationSeedSet:  seedSet,
	}
}

// redisAddr strips the redis:// scheme go-redis does not accept in Addr
func redisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func lookupEnvInt64(key string) (int64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, ignoring", key, val)
		return 0, false
	}
	return n, true
}
