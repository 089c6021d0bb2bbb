package govconf

import (
	"context"
	"time"
)

// Configuration is the capability shared by governance configuration
// backends. Methods without a group use the default root established by Init;
// the Group variants address "/<group>/<key>" for that call only.
type Configuration interface {
	SetURL(u *URL)
	URL() *URL
	Init(ctx context.Context) error
	Close(ctx context.Context) error

	SetConfig(ctx context.Context, key, value string) (string, error)
	SetGroupConfig(ctx context.Context, group, key, value string) (string, error)

	// GetConfig reports ok=false with a nil error when nothing is stored at the path.
	GetConfig(ctx context.Context, key string) (value string, ok bool, err error)
	GetGroupConfig(ctx context.Context, group, key string) (value string, ok bool, err error)

	DeleteConfig(ctx context.Context, key string) (bool, error)
	DeleteGroupConfig(ctx context.Context, group, key string) (bool, error)

	Path(key string) (string, error)
	GroupPath(group, key string) (string, error)
}

// Options tune the KV adapter. The zero value is usable.
type Options struct {
	Logger  Logger        // if nil, NopLogger is used
	Hooks   Hooks         // if nil, NopHooks is used
	Timeout time.Duration // dial/read/write timeout; 0 => 10s
	Dialer  Dialer        // nil => DefaultDialer

	// SwallowStoreErrors keeps failed writes and deletes out of the return
	// value: they are logged and reported as ("", nil) / (false, nil).
	// Read failures are always returned.
	SwallowStoreErrors bool
}
