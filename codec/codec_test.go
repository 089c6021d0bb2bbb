package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type override struct {
	Scope   string            `json:"scope" yaml:"scope" msgpack:"scope" cbor:"scope"`
	Weight  int               `json:"weight" yaml:"weight" msgpack:"weight" cbor:"weight"`
	Params  map[string]string `json:"params" yaml:"params" msgpack:"params" cbor:"params"`
	Enabled bool              `json:"enabled" yaml:"enabled" msgpack:"enabled" cbor:"enabled"`
}

func TestDocumentCodecs(t *testing.T) {
	in := override{Scope: "application", Weight: 200, Params: map[string]string{"timeout": "3000"}, Enabled: true}
	codecs := map[string]Codec[override]{
		"json":    JSON[override]{},
		"yaml":    YAML[override]{},
		"msgpack": Msgpack[override]{},
		"cbor":    MustCBOR[override](false),
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			out, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(in, out) {
				t.Fatalf("got %+v, want %+v", out, in)
			}
		})
	}
}

func TestYAMLIsReadable(t *testing.T) {
	b, err := YAML[override]{}.Encode(override{Scope: "service", Weight: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("scope: service")) {
		t.Fatalf("unexpected yaml:\n%s", b)
	}
}

func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := c.Encode(map[string]int{"c": 3, "a": 1, "b": 2})
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding differs: %x vs %x", first, again)
		}
	}
}

func TestProtobuf(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	b, err := c.Encode(wrapperspb.String("weight=100"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(out, wrapperspb.String("weight=100")) {
		t.Fatalf("got %v", out)
	}
}

func TestRawCodecs(t *testing.T) {
	s, _ := String{}.Decode([]byte("dubbo.properties"))
	if s != "dubbo.properties" {
		t.Fatalf("String decode = %q", s)
	}
	b, _ := Bytes{}.Encode([]byte{0, 1, 2})
	if !bytes.Equal(b, []byte{0, 1, 2}) {
		t.Fatalf("Bytes encode = %v", b)
	}
}

func TestLimit(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}
	if v, err := c.Decode([]byte("abcd")); err != nil || v != "abcd" {
		t.Fatalf("Decode at limit = %q, %v", v, err)
	}
	_, err := c.Decode([]byte("abcde"))
	var tl *PayloadTooLargeError
	if !errors.As(err, &tl) || tl.Size != 5 || tl.Max != 4 {
		t.Fatalf("got %v, want PayloadTooLargeError{5,4}", err)
	}
	unlimited := Limit[string]{Inner: String{}}
	if _, err := unlimited.Decode(make([]byte, 1<<16)); err != nil {
		t.Fatalf("MaxDecode=0 should disable the check: %v", err)
	}
}
