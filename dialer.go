package govconf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/govconf/provider"
	bcp "github.com/unkn0wn-root/govconf/provider/bigcache"
	rdp "github.com/unkn0wn-root/govconf/provider/redis"
	rtp "github.com/unkn0wn-root/govconf/provider/ristretto"
)

// Dialer opens the provider a URL points at. The returned provider is owned
// by the caller.
type Dialer func(ctx context.Context, u *URL, timeout time.Duration) (pr.Provider, error)

const defaultRedisPort = 6379

// DefaultDialer supports the protocols "redis" (or empty), "bigcache" and
// "ristretto". Redis connections are pinged once so an unreachable server
// fails Init rather than the first call.
func DefaultDialer(ctx context.Context, u *URL, timeout time.Duration) (pr.Provider, error) {
	switch u.Protocol {
	case "", "redis":
		return dialRedis(ctx, u, timeout)
	case "bigcache":
		p, err := bcp.New(ctx, bcp.Config{})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ristretto":
		p, err := rtp.New(rtp.DefaultConfig())
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, &UnsupportedProtocolError{Protocol: u.Protocol}
	}
}

func dialRedis(ctx context.Context, u *URL, timeout time.Duration) (pr.Provider, error) {
	opts, err := redisOptions(u, timeout)
	if err != nil {
		return nil, err
	}
	rdb := goredis.NewClient(opts)
	p, err := rdp.New(rdp.Config{Client: rdb, CloseClient: true})
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		_ = p.Close(ctx)
		return nil, fmt.Errorf("govconf: connect %s: %w", opts.Addr, err)
	}
	return p, nil
}

func redisOptions(u *URL, timeout time.Duration) (*goredis.Options, error) {
	addr := *u
	if addr.Port == 0 {
		addr.Port = defaultRedisPort
	}
	db := 0
	if v := u.Param("db", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("govconf: invalid db parameter %q", v)
		}
		db = n
	}
	return &goredis.Options{
		Addr:         addr.Address(),
		Username:     u.Username,
		Password:     u.Password,
		DB:           db,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}, nil
}
