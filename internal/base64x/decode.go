// Package base64x decodes base64-encoded byte slices for data-URI payloads.
// It offers an accelerated path backed by chenzhuoyu/base64x (SIMD-optimized,
// pulled in transitively through the sonic/gin dependency chain this module's
// stack is grounded on) and a scalar fallback using the standard library, so
// callers can force the fallback explicitly for hermetic or constrained
// environments.
package base64x

import (
	stdbase64 "encoding/base64"

	accel "github.com/chenzhuoyu/base64x"
)

// Decoder decodes standard base64 (alphabet A-Z a-z 0-9 + /, padding =).
type Decoder struct {
	// UseSIMD selects the accelerated decode path. When false, Decode uses
	// the standard library scalar decoder instead.
	UseSIMD bool
}

// New returns a Decoder configured for the given SIMD preference.
func New(useSIMD bool) Decoder {
	return Decoder{UseSIMD: useSIMD}
}

// Decode decodes s as standard base64. Malformed input (a bad character or
// incorrect padding) yields a zero-length slice rather than an error; callers
// that need to distinguish "empty because input was empty" from "empty
// because input was malformed" should check len(s) against the result.
func (d Decoder) Decode(s string) []byte {
	if d.UseSIMD {
		out, err := accel.StdEncoding.DecodeString(s)
		if err != nil {
			return nil
		}
		return out
	}
	return decodeScalar(s)
}

// decodeScalar is the explicit scalar fallback, never SIMD-accelerated.
func decodeScalar(s string) []byte {
	out, err := stdbase64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	return out
}
