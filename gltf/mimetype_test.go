package gltf

import "testing"

func TestParseMimeType(t *testing.T) {
	cases := []struct {
		in   string
		want MimeType
	}{
		{"image/jpeg", MimeTypeJPEG},
		{"image/png", MimeTypePNG},
		{"image/ktx2", MimeTypeKTX2},
		{"image/vnd-ms.dds", MimeTypeDDS},
		{"application/gltf-buffer", MimeTypeGltfBuffer},
		{"application/octet-stream", MimeTypeOctetStream},
		{"text/plain", MimeTypeNone},
		{"", MimeTypeNone},
	}
	for _, c := range cases {
		if got := ParseMimeType(c.in); got != c.want {
			t.Errorf("ParseMimeType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseAccessorType(t *testing.T) {
	cases := []struct {
		in      string
		want    AccessorType
		wantOK  bool
	}{
		{"SCALAR", AccessorTypeScalar, true},
		{"VEC2", AccessorTypeVec2, true},
		{"VEC3", AccessorTypeVec3, true},
		{"VEC4", AccessorTypeVec4, true},
		{"MAT2", AccessorTypeMat2, true},
		{"MAT3", AccessorTypeMat3, true},
		{"MAT4", AccessorTypeMat4, true},
		{"NOPE", 0, false},
	}
	for _, c := range cases {
		got, ok := parseAccessorType(c.in)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Errorf("parseAccessorType(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestComponentTypeValid(t *testing.T) {
	if !componentTypeValid(ComponentTypeFloat, false) {
		t.Error("Float should be valid")
	}
	if componentTypeValid(ComponentTypeDouble, false) {
		t.Error("Double should be invalid without allowDouble")
	}
	if !componentTypeValid(ComponentTypeDouble, true) {
		t.Error("Double should be valid with allowDouble")
	}
	if componentTypeValid(9999, true) {
		t.Error("unknown component type should be invalid")
	}
}
