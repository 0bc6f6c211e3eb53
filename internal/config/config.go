package config

import "os"

type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	CORSOrigin    string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	CatalogPath      string
	RetestLink       string
	ScheduleTestMode bool
}

func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "btyesteem"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "*"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		CatalogPath:      getEnv("CATALOG_PATH", ""),
		RetestLink:       getEnv("RETEST_LINK", "https://example.com/retest"),
		ScheduleTestMode: getEnv("SCHEDULE_TEST_MODE", "false") == "true",
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
