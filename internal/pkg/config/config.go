// Package config reads runtime settings for the service.
//
// Values come from a YAML file and can be overridden by environment variables
// where dots become underscores (jwt.secret -> JWT_SECRET).
package config

import (
	"io"
	"time"
)

// Config defines the typed lookups the application performs.
// Missing keys yield the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool returns the value for key as bool.
	GetBool(key string) bool
	// GetInt returns the value for key as int.
	GetInt(key string) int
	// GetInt32 returns the value for key as int32.
	GetInt32(key string) int32
	// GetInt64 returns the value for key as int64.
	GetInt64(key string) int64
	// GetFloat64 returns the value for key as float64.
	GetFloat64(key string) float64
	// GetString returns the value for key as string.
	GetString(key string) string

	// GetSecond returns the integer value for key as a number of seconds.
	GetSecond(key string) time.Duration
	// GetMinute returns the integer value for key as a number of minutes.
	GetMinute(key string) time.Duration

	// GetArray splits a "<a>,<b>,..." value. Empty elements are dropped.
	GetArray(key string) []string
}
