// Package govconf implements a governance configuration store over a flat
// key/value backend, exposing hierarchical slash-separated paths.
//
// Components:
//   - Configuration: the capability interface shared by governance backends.
//   - KV: the path-namespaced adapter. Delegates to a provider.Provider
//     (Redis in production, bigcache/ristretto for local use).
//   - Typed[V]: a codec-backed view for structured documents (routing rules,
//     dynamic properties).
//
// Paths:
//
//	/<group>/<key>   - group defaults to the URL "group" parameter, then "dubbo"
//
// Usage:
//
//	u, _ := govconf.ParseURL("redis://127.0.0.1:6379?group=config")
//	kv := govconf.New(govconf.Options{})
//	kv.SetURL(u)
//	if err := kv.Init(ctx); err != nil { ... }
//	defer kv.Close(ctx)
//
//	_, _ = kv.SetConfig(ctx, "timeout", "30")          // /config/timeout
//	v, ok, err := kv.GetGroupConfig(ctx, "a/group", "timeout") // /a/group/timeout
package govconf
