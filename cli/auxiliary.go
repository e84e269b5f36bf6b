package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvOr returns either environment variable envKey (if non-empty) or the default value
func EnvOr(envKey, defaultValue string) string {
	val, ok := os.LookupEnv(envKey)
	if !ok || val == "" {
		return defaultValue
	}
	return val
}

// EnvToBool returns environment variable envKey considered as boolean value
func EnvToBool(envKey string) (bool, error) {
	val, ok := os.LookupEnv(envKey)
	if ok && (val == `1` || strings.ToLower(val) == `true`) {
		return true, nil
	} else if ok && (val == `0` || strings.ToLower(val) == `false`) {
		return false, nil
	}
	return false, fmt.Errorf(`boolean env key '%s' has non-bool value '%s'`, envKey, val)
}

// EnvToInt returns environment variable envKey considered as non-negative integer value
func EnvToInt(envKey string) (int, bool) {
	val, ok := os.LookupEnv(envKey)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseUint(val, 10, 16)
	if err != nil {
		return 0, false
	}
	return int(i), true
}
