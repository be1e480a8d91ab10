package jsonsrc

import "encoding/json"

// decodeScalar is the explicit non-accelerated tokenizer path.
func decodeScalar(buf []byte, v any) error {
	return json.Unmarshal(buf, v)
}
