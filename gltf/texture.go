package gltf

import "github.com/headbirdgames/fastgltf/internal/ext"

// parseTextures builds each Texture, preferring an enabled extension's
// image source (KHR_texture_basisu, MSFT_texture_dds) over the base
// "source" field, per spec.md §4.5.5 and the ext package's declared
// precedence order. When neither an extension nor "source" supplies an
// image, ImageIndex is left nil (sentinel-valued) rather than treated as
// an error, following spec.md §4.5.5 and the original; this reading is in
// tension with spec.md §8 property 5, which describes the same case as
// InvalidGltf — spec.md is not internally consistent here, and the
// sentinel behavior was kept as the more conservative, permissive choice.
func (p *Parser) parseTextures(docTextures []documentTexture) ([]Texture, error) {
	out := make([]Texture, 0, len(docTextures))
	for i, dt := range docTextures {
		tex := Texture{SamplerIndex: dt.Sampler, Name: dt.Name}
		extIndex, found, err := ext.ResolveTextureSource(dt.Extensions, p.cfg.enabledExtensions)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("textures", i, "extensions"), err)
		}
		if found {
			tex.ImageIndex = extIndex
			tex.FallbackImageIndex = dt.Source
		} else {
			tex.ImageIndex = dt.Source
		}
		out = append(out, tex)
	}
	return out, nil
}

func parseTextureInfo(dt *documentTextureInfo, enabled ext.Flags) (*TextureInfo, error) {
	if dt == nil {
		return nil, nil
	}
	if dt.Index == nil {
		return nil, newError(InvalidGltf, "index", nil)
	}
	ti := &TextureInfo{
		TextureIndex:  *dt.Index,
		TexCoordIndex: dt.TexCoord,
		Scale:         1,
		UVScale:       [2]float32{1, 1},
	}
	if dt.Scale != nil {
		ti.Scale = float32(*dt.Scale)
	}
	if enabled.Has(ext.KHRTextureTransform) {
		if raw, ok := dt.Extensions["KHR_texture_transform"]; ok {
			tt, err := ext.ParseTextureTransform(raw)
			if err != nil {
				return nil, err
			}
			if tt.TexCoord != nil {
				ti.TexCoordIndex = *tt.TexCoord
			}
			ti.Rotation = tt.Rotation
			ti.UVOffset = tt.Offset
			ti.UVScale = tt.Scale
			return ti, nil
		}
	}
	return ti, nil
}
