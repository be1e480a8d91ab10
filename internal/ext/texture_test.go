package ext

import (
	"encoding/json"
	"testing"
)

func TestParseTextureTransformDefaults(t *testing.T) {
	tt, err := ParseTextureTransform(nil)
	if err != nil {
		t.Fatalf("ParseTextureTransform() error = %v", err)
	}
	if tt.Rotation != 0 || tt.Offset != [2]float32{0, 0} || tt.Scale != [2]float32{1, 1} {
		t.Fatalf("ParseTextureTransform() = %+v, want identity defaults", tt)
	}
	if tt.TexCoord != nil {
		t.Fatalf("TexCoord = %v, want nil", tt.TexCoord)
	}
}

func TestParseTextureTransformOverrides(t *testing.T) {
	raw := json.RawMessage(`{"texCoord":1,"rotation":1.5,"offset":[0.1,0.2],"scale":[2,3]}`)
	tt, err := ParseTextureTransform(raw)
	if err != nil {
		t.Fatalf("ParseTextureTransform() error = %v", err)
	}
	if tt.TexCoord == nil || *tt.TexCoord != 1 {
		t.Fatalf("TexCoord = %v, want 1", tt.TexCoord)
	}
	if tt.Rotation != 1.5 {
		t.Fatalf("Rotation = %v, want 1.5", tt.Rotation)
	}
	if tt.Offset != [2]float32{0.1, 0.2} {
		t.Fatalf("Offset = %v", tt.Offset)
	}
	if tt.Scale != [2]float32{2, 3} {
		t.Fatalf("Scale = %v", tt.Scale)
	}
}

func TestParseTextureTransformMalformed(t *testing.T) {
	raw := json.RawMessage(`{"rotation":"not-a-number"}`)
	if _, err := ParseTextureTransform(raw); err == nil {
		t.Fatalf("ParseTextureTransform() error = nil, want non-nil")
	}
}

func TestResolveTextureSourceBasisuWins(t *testing.T) {
	extensions := map[string]json.RawMessage{
		"KHR_texture_basisu": json.RawMessage(`{"source":9}`),
		"MSFT_texture_dds":   json.RawMessage(`{"source":3}`),
	}
	idx, found, err := ResolveTextureSource(extensions, KHRTextureBasisu|MSFTTextureDDS)
	if err != nil {
		t.Fatalf("ResolveTextureSource() error = %v", err)
	}
	if !found || idx == nil || *idx != 9 {
		t.Fatalf("ResolveTextureSource() = %v, found=%v, want 9", idx, found)
	}
}

func TestResolveTextureSourceDisabledIgnored(t *testing.T) {
	extensions := map[string]json.RawMessage{
		"KHR_texture_basisu": json.RawMessage(`{"source":9}`),
	}
	idx, found, err := ResolveTextureSource(extensions, 0)
	if err != nil {
		t.Fatalf("ResolveTextureSource() error = %v", err)
	}
	if found || idx != nil {
		t.Fatalf("ResolveTextureSource() = %v, found=%v, want not found", idx, found)
	}
}

func TestResolveTextureSourceNone(t *testing.T) {
	idx, found, err := ResolveTextureSource(nil, KHRTextureBasisu)
	if err != nil {
		t.Fatalf("ResolveTextureSource() error = %v", err)
	}
	if found || idx != nil {
		t.Fatalf("ResolveTextureSource() = %v, found=%v, want not found", idx, found)
	}
}
