package main

import (
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all Tempo environment variables
const envVarPrefix = "TEMPO_"

// getEnvBool retrieves a boolean value from an environment variable
// If the variable is not set, returns the defaultValue
func getEnvBool(name string, defaultValue bool) bool {
	val := os.Getenv(name)
	if val == "" {
		return defaultValue
	}
	val = strings.ToLower(val)
	return val == "true" || val == "1" || val == "yes"
}

// getEnvInt retrieves an integer value from an environment variable
// If the variable is not set or invalid, returns the defaultValue
func getEnvInt(name string, defaultValue int) int {
	val := os.Getenv(name)
	if val == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// getEnvString retrieves a string value from an environment variable
// If the variable is not set, returns the defaultValue
func getEnvString(name string, defaultValue string) string {
	val := os.Getenv(name)
	if val == "" {
		return defaultValue
	}
	return val
}

// listTempoEnvVars returns a map of all Tempo environment variables
func listTempoEnvVars() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 && strings.HasPrefix(parts[0], envVarPrefix) {
			result[parts[0]] = parts[1]
		}
	}

	return result
}
