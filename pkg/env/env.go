package env

import (
	"os"
	"strings"
)

// Get reads an environment variable, treating unset and blank the same. Used
// for knobs outside the envconfig tree, like the platform-injected PORT and
// LOG_FORMAT.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
