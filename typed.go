package govconf

import (
	"context"
	"fmt"

	c "github.com/unkn0wn-root/govconf/codec"
)

// Typed stores structured documents (routing rules, dynamic properties) in
// any Configuration through a codec. An empty group uses the default root.
type Typed[V any] struct {
	cfg   Configuration
	codec c.Codec[V]
}

func NewTyped[V any](cfg Configuration, codec c.Codec[V]) *Typed[V] {
	return &Typed[V]{cfg: cfg, codec: codec}
}

func (t *Typed[V]) Set(ctx context.Context, group, key string, v V) error {
	b, err := t.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("govconf: encode %q: %w", key, err)
	}
	_, err = t.cfg.SetGroupConfig(ctx, group, key, string(b))
	return err
}

// Get reports ok=false when nothing is stored. A stored value that does not
// decode is an error, not a miss.
func (t *Typed[V]) Get(ctx context.Context, group, key string) (V, bool, error) {
	var zero V
	raw, ok, err := t.cfg.GetGroupConfig(ctx, group, key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := t.codec.Decode([]byte(raw))
	if err != nil {
		path, _ := t.cfg.GroupPath(group, key)
		return zero, false, fmt.Errorf("govconf: decode %q: %w", path, err)
	}
	return v, true, nil
}

func (t *Typed[V]) Delete(ctx context.Context, group, key string) (bool, error) {
	return t.cfg.DeleteGroupConfig(ctx, group, key)
}
