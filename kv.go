package govconf

import (
	"context"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/govconf/provider"
)

// KV is the path-namespaced configuration adapter. Construct with New, point
// it at a server with SetURL, then Init. Safe for concurrent use after Init.
type KV struct {
	log     Logger
	hooks   Hooks
	timeout time.Duration
	dial    Dialer
	swallow bool

	mu       sync.RWMutex
	url      *URL
	provider pr.Provider
	root     string // immutable after Init
}

var _ Configuration = (*KV)(nil)

func New(opts Options) *KV {
	kv := &KV{
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:   coalesce[Hooks](opts.Hooks, NopHooks{}),
		timeout: coalesce(opts.Timeout, defaultTimeout),
		swallow: opts.SwallowStoreErrors,
	}
	if opts.Dialer != nil {
		kv.dial = opts.Dialer
	} else {
		kv.dial = DefaultDialer
	}
	return kv
}

func (kv *KV) SetURL(u *URL) {
	kv.mu.Lock()
	kv.url = u
	kv.mu.Unlock()
}

func (kv *KV) URL() *URL {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return kv.url
}

// Init dials the provider for the configured URL and resolves the default
// root from its "group" parameter.
func (kv *KV) Init(ctx context.Context) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.url == nil {
		return ErrNoURL
	}
	if kv.provider != nil {
		return ErrAlreadyInitialized
	}
	p, err := kv.dial(ctx, kv.url, kv.timeout)
	if err != nil {
		return err
	}
	kv.provider = p
	kv.root = RootDir(kv.url.Param(GroupKey, DefaultRoot))
	kv.log.Info("governance configuration initialized", Fields{"url": kv.url.String(), "root": kv.root})
	return nil
}

// Close releases the provider. Init may be called again afterwards.
func (kv *KV) Close(ctx context.Context) error {
	kv.mu.Lock()
	p := kv.provider
	kv.provider = nil
	kv.mu.Unlock()
	if p == nil {
		return nil
	}
	return p.Close(ctx)
}

// Root returns the default root resolved by Init, or "" before Init.
func (kv *KV) Root() string {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return kv.root
}

func (kv *KV) SetConfig(ctx context.Context, key, value string) (string, error) {
	return kv.SetGroupConfig(ctx, "", key, value)
}

func (kv *KV) GetConfig(ctx context.Context, key string) (string, bool, error) {
	return kv.GetGroupConfig(ctx, "", key)
}

func (kv *KV) DeleteConfig(ctx context.Context, key string) (bool, error) {
	return kv.DeleteGroupConfig(ctx, "", key)
}

func (kv *KV) SetGroupConfig(ctx context.Context, group, key, value string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if value == "" {
		return "", ErrEmptyValue
	}
	p, path, err := kv.target(group, key)
	if err != nil {
		return "", err
	}
	if err := p.Set(ctx, path, []byte(value)); err != nil {
		kv.log.Error("set config failed", opFields("set", path, err))
		kv.hooks.WriteFailed(path, err)
		if kv.swallow {
			return "", nil
		}
		return "", &StoreError{Op: "set", Path: path, Err: err}
	}
	kv.log.Debug("set config", opFields("set", path, nil))
	return value, nil
}

func (kv *KV) GetGroupConfig(ctx context.Context, group, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	p, path, err := kv.target(group, key)
	if err != nil {
		return "", false, err
	}
	b, ok, err := p.Get(ctx, path)
	if err != nil {
		kv.hooks.ReadFailed(path, err)
		return "", false, &StoreError{Op: "get", Path: path, Err: err}
	}
	if !ok {
		kv.hooks.Miss(path)
		return "", false, nil
	}
	return string(b), true, nil
}

// DeleteGroupConfig reports true once the store accepted the delete, whether
// or not anything was stored at the path.
func (kv *KV) DeleteGroupConfig(ctx context.Context, group, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	p, path, err := kv.target(group, key)
	if err != nil {
		return false, err
	}
	removed, err := p.Del(ctx, path)
	if err != nil {
		kv.log.Error("delete config failed", opFields("delete", path, err))
		kv.hooks.DeleteFailed(path, err)
		if kv.swallow {
			return false, nil
		}
		return false, &StoreError{Op: "delete", Path: path, Err: err}
	}
	kv.log.Debug("deleted config", Fields{"path": path, "removed": removed})
	return true, nil
}

func (kv *KV) Path(key string) (string, error) {
	return kv.GroupPath("", key)
}

// GroupPath computes the store key without touching the store. Before Init
// the default root comes from the URL, if one is set.
func (kv *KV) GroupPath(group, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return NodePath(kv.rootFor(group), key), nil
}

func (kv *KV) rootFor(group string) string {
	if group != "" {
		return RootDir(group)
	}
	kv.mu.RLock()
	root, u := kv.root, kv.url
	kv.mu.RUnlock()
	if root != "" {
		return root
	}
	return RootDir(u.Param(GroupKey, DefaultRoot))
}

func (kv *KV) target(group, key string) (pr.Provider, string, error) {
	kv.mu.RLock()
	p, root := kv.provider, kv.root
	kv.mu.RUnlock()
	if p == nil {
		return nil, "", ErrNotInitialized
	}
	if group != "" {
		root = RootDir(group)
	}
	return p, NodePath(root, key), nil
}
