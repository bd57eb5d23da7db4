// Package env reads raw process environment values during bootstrap, before
// the envconfig layer has run. It must stay dependency free.
package env

import "os"

// Get returns the named variable's value, or fallback when it is unset or
// empty.
func Get(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
