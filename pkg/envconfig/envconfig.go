// Package envconfig reads process configuration from environment variables.
//
// It follows the same small-helper convention the rest of the stack uses:
// a String/Int lookup with a default, plus a Trim step for values that may
// arrive wrapped in stray quotes (a common artifact of how container
// orchestrators pass env vars through shell-quoted compose files).
package envconfig

import (
	"os"
	"strconv"
	"strings"
)

// String returns the environment variable value with surrounding quotes
// and whitespace stripped, or defaultValue if it is unset or empty.
func String(key, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return Unquote(v)
}

// Int returns the environment variable parsed as an int, or defaultValue if
// it is unset, empty, or not a valid integer.
func Int(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(Unquote(v))
	if err != nil {
		return defaultValue
	}
	return n
}

// Unquote strips stray leading/trailing single quotes, double quotes, and
// whitespace from v. Container tooling sometimes passes env values through
// a shell layer that leaves literal quote characters in place.
func Unquote(v string) string {
	return strings.Trim(v, "\"' ")
}
