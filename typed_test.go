package govconf

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	c "github.com/unkn0wn-root/govconf/codec"
)

type routeRule struct {
	Key        string   `json:"key" yaml:"key"`
	Enabled    bool     `json:"enabled" yaml:"enabled"`
	Conditions []string `json:"conditions" yaml:"conditions"`
}

func TestTypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	rule := routeRule{Key: "demo-app", Enabled: true, Conditions: []string{"host = 10.0.0.1 => host = 10.0.0.2"}}

	codecs := map[string]c.Codec[routeRule]{
		"json":    c.JSON[routeRule]{},
		"yaml":    c.YAML[routeRule]{},
		"msgpack": c.Msgpack[routeRule]{},
		"cbor":    c.MustCBOR[routeRule](true),
	}
	for name, cd := range codecs {
		t.Run(name, func(t *testing.T) {
			mp := newMemProvider()
			kv := newTestKV(t, "redis://localhost:6379", mp, nil)
			typed := NewTyped[routeRule](kv, cd)

			if _, ok, err := typed.Get(ctx, "rules", "demo-app.condition-router"); ok || err != nil {
				t.Fatalf("expected miss, ok=%v err=%v", ok, err)
			}
			if err := typed.Set(ctx, "rules", "demo-app.condition-router", rule); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if !mp.has("/rules/demo-app.condition-router") {
				t.Fatalf("document not stored at group path")
			}
			got, ok, err := typed.Get(ctx, "rules", "demo-app.condition-router")
			if err != nil || !ok || !reflect.DeepEqual(got, rule) {
				t.Fatalf("Get = %+v, %v, %v", got, ok, err)
			}
			if ok, err := typed.Delete(ctx, "rules", "demo-app.condition-router"); err != nil || !ok {
				t.Fatalf("Delete = %v, %v", ok, err)
			}
		})
	}
}

func TestTypedDecodeError(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, "redis://localhost:6379", newMemProvider(), nil)
	if _, err := kv.SetConfig(ctx, "rule", "{not json"); err != nil {
		t.Fatal(err)
	}
	typed := NewTyped[routeRule](kv, c.JSON[routeRule]{})
	_, ok, err := typed.Get(ctx, "", "rule")
	if err == nil || ok {
		t.Fatalf("expected decode error, ok=%v err=%v", ok, err)
	}
	if !strings.Contains(err.Error(), "/dubbo/rule") {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestTypedLimit(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t, "redis://localhost:6379", newMemProvider(), nil)
	big := NewTyped[string](kv, c.String{})
	if err := big.Set(ctx, "", "prop", strings.Repeat("x", 64)); err != nil {
		t.Fatal(err)
	}
	limited := NewTyped[string](kv, c.Limit[string]{Inner: c.String{}, MaxDecode: 16})
	_, _, err := limited.Get(ctx, "", "prop")
	var tooLarge *c.PayloadTooLargeError
	if !errors.As(err, &tooLarge) || tooLarge.Size != 64 {
		t.Fatalf("got %v, want PayloadTooLargeError", err)
	}
}

func TestTypedEmptyEncoding(t *testing.T) {
	kv := newTestKV(t, "redis://localhost:6379", newMemProvider(), nil)
	err := NewTyped[string](kv, c.String{}).Set(context.Background(), "", "prop", "")
	if !errors.Is(err, ErrEmptyValue) {
		t.Fatalf("got %v, want ErrEmptyValue", err)
	}
}
