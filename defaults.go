package govconf

import "time"

const (
	// DefaultRoot is the group used when the URL carries no "group" parameter.
	DefaultRoot = "dubbo"
	// GroupKey is the URL parameter naming the default group.
	GroupKey = "group"
	// PathSeparator separates the root from the key.
	PathSeparator = "/"

	defaultTimeout = 10 * time.Second
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
