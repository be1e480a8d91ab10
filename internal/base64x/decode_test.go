package base64x

import (
	"bytes"
	"testing"
)

func TestDecodeScalar(t *testing.T) {
	d := New(false)
	got := d.Decode("AAECAwQ=")
	want := []byte{0, 1, 2, 3, 4}
	if !bytes.Equal(got, want) {
		t.Fatalf("Decode() = %v, want %v", got, want)
	}
}

func TestDecodeSIMD(t *testing.T) {
	d := New(true)
	got := d.Decode("AAECAwQ=")
	want := []byte{0, 1, 2, 3, 4}
	if !bytes.Equal(got, want) {
		t.Fatalf("Decode() = %v, want %v", got, want)
	}
}

func TestDecodeMalformedReturnsEmpty(t *testing.T) {
	for _, simd := range []bool{false, true} {
		d := New(simd)
		got := d.Decode("not-valid-base64!!")
		if len(got) != 0 {
			t.Fatalf("Decode(useSIMD=%v) = %v, want empty", simd, got)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	d := New(false)
	got := d.Decode("")
	if len(got) != 0 {
		t.Fatalf("Decode(\"\") = %v, want empty", got)
	}
}
