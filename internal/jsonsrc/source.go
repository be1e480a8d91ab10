// Package jsonsrc owns the byte buffer backing a glTF JSON document and the
// choice of JSON tokenizer used to decode it. A Source can be built from an
// in-memory byte slice or loaded from a filesystem path; either way it owns
// a private copy of the bytes, so callers are free to mutate or discard
// their own buffer afterward.
package jsonsrc

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// padding is extra scratch space appended to the owned buffer. encoding/json
// does not require it, but it is retained so the buffer shape stays
// consistent with the SIMD-oriented decoders in this stack (sonic, and the
// accelerated base64 path in internal/base64x) should either ever need to
// overread by a few bytes.
const padding = 32

// Source is an owning wrapper around the padded byte buffer holding glTF
// JSON text, plus the tokenizer selection used to decode it.
type Source struct {
	buf     []byte
	useSIMD bool
}

// FromBytes copies b into a new, padded, owned buffer.
func FromBytes(b []byte, useSIMD bool) Source {
	buf := make([]byte, len(b)+padding)
	copy(buf, b)
	return Source{buf: buf[:len(b)], useSIMD: useSIMD}
}

// FromFile reads the file at path into a new owned Source. Unlike the
// fastgltf original, which silently leaves the buffer empty on I/O failure
// (Open Question (iii) in spec.md §9), this constructor propagates the
// error to the caller.
func FromFile(path string, useSIMD bool) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("jsonsrc: read %s: %w", path, err)
	}
	return FromBytes(data, useSIMD), nil
}

// Bytes returns the JSON text owned by the Source, excluding scratch padding.
func (s Source) Bytes() []byte {
	return s.buf
}

// Empty reports whether the Source holds no JSON text, which downstream
// parsing surfaces as an invalid-JSON error.
func (s Source) Empty() bool {
	return len(s.buf) == 0
}

// Decode unmarshals the Source's JSON text into v, using the accelerated
// sonic tokenizer unless the Source was constructed with useSIMD=false, in
// which case it falls back to the standard library decoder.
func (s Source) Decode(v any) error {
	if s.Empty() {
		return fmt.Errorf("jsonsrc: empty buffer")
	}
	if s.useSIMD {
		return sonic.Unmarshal(s.buf, v)
	}
	return decodeScalar(s.buf, v)
}
