package env

import (
	"os"
	"strconv"
	"strings"
)

// Get returns the variable's value or defaultVal when unset. Empty
// values count as set; callers that want "empty means default" should
// trim and check themselves.
func Get(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// GetInt parses the variable as an int, falling back to defaultVal when
// unset or unparsable.
func GetInt(key string, defaultVal int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(strings.TrimSpace(valStr))
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool accepts 1/0, true/false, yes/no in any case.
func GetBool(key string, defaultVal bool) bool {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	switch strings.ToLower(strings.TrimSpace(valStr)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultVal
}
