package uri

import (
	"bytes"
	"testing"

	"github.com/headbirdgames/fastgltf/internal/base64x"
)

func TestResolveDataURI(t *testing.T) {
	r, err := Resolve("data:application/octet-stream;base64,AAECAwQ=", "/models", base64x.New(false))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Kind != KindVector {
		t.Fatalf("Kind = %v, want KindVector", r.Kind)
	}
	if !bytes.Equal(r.Data, []byte{0, 1, 2, 3, 4}) {
		t.Fatalf("Data = %v, want [0 1 2 3 4]", r.Data)
	}
	if r.MimeType != "application/octet-stream" {
		t.Fatalf("MimeType = %q", r.MimeType)
	}
}

func TestResolveFilePath(t *testing.T) {
	r, err := Resolve("textures/diffuse.png", "/models", base64x.New(false))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Kind != KindFilePath {
		t.Fatalf("Kind = %v, want KindFilePath", r.Kind)
	}
	if r.Path != "/models/textures/diffuse.png" {
		t.Fatalf("Path = %q", r.Path)
	}
}

func TestResolveDataURINonBase64Encoding(t *testing.T) {
	_, err := Resolve("data:application/octet-stream;base32,AAECAwQ=", "/models", base64x.New(false))
	if err != ErrInvalidGltf {
		t.Fatalf("err = %v, want ErrInvalidGltf", err)
	}
}

func TestResolveDataURIMissingSeparators(t *testing.T) {
	_, err := Resolve("data:application/octet-stream", "/models", base64x.New(false))
	if err != ErrInvalidGltf {
		t.Fatalf("err = %v, want ErrInvalidGltf", err)
	}
}

func TestResolveDataURIMalformedPayload(t *testing.T) {
	_, err := Resolve("data:application/octet-stream;base64,not-valid!!", "/models", base64x.New(false))
	if err != ErrInvalidGltf {
		t.Fatalf("err = %v, want ErrInvalidGltf", err)
	}
}
