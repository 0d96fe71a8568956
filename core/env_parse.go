package core

import (
	"os"
	"strings"
)

// GetEnvOrDefault returns the value of key, or defaultValue when it is unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseBoolEnv reads key as a boolean. "true", "1", "yes" and "on" are true,
// "false", "0", "no" and "off" are false, case-insensitively. Anything else,
// including an unset variable, yields defaultValue.
func ParseBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
