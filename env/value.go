// Package env reads configuration values from environment variables.
// It backs the check package's runtime kill switch, which is why values are always read fresh instead of cached.
package env

import (
	"os"
	"strings"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	for _, entry := range os.Environ() {
		key, val, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive, and values are trimmed of surrounding whitespace.
func Val(key string, defaultVal string) string {
	envMap := getEnv()
	key = strings.ToLower(key)

	if val, ok := envMap[key]; ok {
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}

// BoolIf allows translating an environment variable string value to a boolean using the given translation map.
// It's expected for the user to populate translation with a set of strings that relate to the map key.
// These values will be compared in a case-insensitive way.
//
// The defaultVal will be returned if the variable isn't set, is empty, or doesn't match any translation.
func BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 || translation == nil {
		return defaultVal
	}
	for _, truthy := range translation[true] {
		if sval == strings.ToLower(truthy) {
			return true
		}
	}
	for _, falsy := range translation[false] {
		if sval == strings.ToLower(falsy) {
			return false
		}
	}
	return defaultVal
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	return BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}
