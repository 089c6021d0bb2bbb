package govconf

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// URL describes a governance backend: where it lives and how to reach it.
type URL struct {
	Protocol string
	Username string
	Password string
	Host     string
	Port     int
	Params   map[string]string
}

// ParseURL parses "proto://[user[:pass]@]host[:port][?k=v...]".
// A missing port is left as 0 and filled in by the dialer.
func ParseURL(raw string) (*URL, error) {
	pu, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("govconf: parse url: %w", err)
	}
	u := &URL{
		Protocol: pu.Scheme,
		Host:     pu.Hostname(),
		Params:   make(map[string]string),
	}
	if p := pu.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("govconf: parse url port %q: %w", p, err)
		}
		u.Port = port
	}
	if pu.User != nil {
		u.Username = pu.User.Username()
		u.Password, _ = pu.User.Password()
	}
	for k, vs := range pu.Query() {
		if len(vs) > 0 {
			u.Params[k] = vs[0]
		}
	}
	return u, nil
}

// Param returns the named parameter, or def when it is absent or empty.
func (u *URL) Param(key, def string) string {
	if u == nil || u.Params == nil {
		return def
	}
	if v := u.Params[key]; v != "" {
		return v
	}
	return def
}

// Address returns host:port.
func (u *URL) Address() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

func (u *URL) String() string {
	pu := url.URL{Scheme: u.Protocol, Host: u.Address()}
	if u.Username != "" || u.Password != "" {
		pu.User = url.UserPassword(u.Username, u.Password)
	}
	if len(u.Params) > 0 {
		q := url.Values{}
		for k, v := range u.Params {
			q.Set(k, v)
		}
		pu.RawQuery = q.Encode()
	}
	return pu.Redacted()
}
