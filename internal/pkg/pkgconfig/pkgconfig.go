package pkgconfig

import "time"

type Config interface {
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetDuration(key string) time.Duration
	Close() error
}
