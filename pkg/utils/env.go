package utils

import (
	"os"
	"strings"
)

func GetEnvOrDefault(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

// GetEnvListOrDefault splits a comma separated variable, dropping empty items.
func GetEnvListOrDefault(key string, def []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	var ret []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	if len(ret) == 0 {
		return def
	}
	return ret
}
