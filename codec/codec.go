// Package codec converts structured configuration documents to the bytes a
// provider stores. Used by govconf.Typed.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
