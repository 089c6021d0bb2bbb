package bigcache

import (
	"context"
	"testing"
)

func TestProvider(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{Shards: 16})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if _, ok, err := p.Get(ctx, "/dubbo/k"); ok || err != nil {
		t.Fatalf("Get miss expected, ok=%v err=%v", ok, err)
	}
	if err := p.Set(ctx, "/dubbo/k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	b, ok, err := p.Get(ctx, "/dubbo/k")
	if err != nil || !ok || string(b) != "v" {
		t.Fatalf("Get = %q, %v, %v", b, ok, err)
	}
	if removed, err := p.Del(ctx, "/dubbo/k"); err != nil || !removed {
		t.Fatalf("Del = %v, %v", removed, err)
	}
	if removed, err := p.Del(ctx, "/dubbo/k"); err != nil || removed {
		t.Fatalf("Del absent = %v, %v", removed, err)
	}
}

func TestInvalidShards(t *testing.T) {
	if _, err := New(context.Background(), Config{Shards: 3}); err == nil {
		t.Fatalf("non power-of-two shards should be rejected")
	}
}
