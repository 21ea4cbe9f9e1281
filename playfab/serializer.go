package playfab

import "github.com/bytedance/sonic"

// Serializer encodes request records and decodes response payloads.
// Implementations must round-trip json.RawMessage values unchanged.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type sonicSerializer struct {
	api sonic.API
}

// SonicSerializer returns the default serializer, configured to behave like encoding/json.
func SonicSerializer() Serializer {
	return sonicSerializer{api: sonic.ConfigStd}
}

func (s sonicSerializer) Marshal(v any) ([]byte, error) {
	return s.api.Marshal(v)
}

func (s sonicSerializer) Unmarshal(data []byte, v any) error {
	return s.api.Unmarshal(data, v)
}
