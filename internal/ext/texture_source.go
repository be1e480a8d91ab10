package ext

import (
	"encoding/json"
	"fmt"
)

type textureSourceJSON struct {
	Source *int `json:"source,omitempty"`
}

// ResolveTextureSource inspects a texture's "extensions" object for
// KHR_texture_basisu and MSFT_texture_dds, each of which may carry a
// "source" image index overriding the base source. Per spec.md §4.5.5,
// KHR_texture_basisu wins if both are present and enabled (first-match
// order). enabled reports which extensions the caller has turned on;
// extensions not enabled are ignored even if present in the JSON.
func ResolveTextureSource(extensions map[string]json.RawMessage, enabled Flags) (imageIndex *int, found bool, err error) {
	order := []struct {
		name string
		flag Flags
	}{
		{"KHR_texture_basisu", KHRTextureBasisu},
		{"MSFT_texture_dds", MSFTTextureDDS},
	}

	for _, o := range order {
		if !enabled.Has(o.flag) {
			continue
		}
		raw, ok := extensions[o.name]
		if !ok {
			continue
		}
		var payload textureSourceJSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", ErrInvalidGltf, o.name, err)
		}
		if payload.Source != nil {
			return payload.Source, true, nil
		}
	}

	return nil, false, nil
}
