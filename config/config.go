package config

import (
	"os"
	"strconv"
)

var (
	MongoURI  = GetEnv("MONGO_URI", "mongodb://mongodb:27017")
	MongoDB   = GetEnv("MONGO_DB", "guestbook")
	ApiPort   = GetEnv("API_PORT", "8080")
	ListLimit = GetEnvInt("LIST_LIMIT", 50)
)

// GetEnv returns the value of the environment variable or a default value
func GetEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// GetEnvInt returns the integer value of the environment variable, or the
// default when unset, unparsable or not positive.
func GetEnvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
