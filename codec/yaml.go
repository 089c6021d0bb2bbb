package codec

import "gopkg.in/yaml.v3"

// YAML stores documents the way operators usually write routing rules.
// The zero value is ready to use; use `yaml:"name"` tags to control keys.
type YAML[V any] struct{}

var _ Codec[struct{}] = YAML[struct{}]{}

func (YAML[V]) Encode(v V) ([]byte, error) { return yaml.Marshal(v) }
func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	err := yaml.Unmarshal(b, &v)
	return v, err
}
