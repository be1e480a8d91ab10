package gltf

func parseAlphaMode(s string) AlphaMode {
	switch s {
	case "MASK":
		return AlphaModeMask
	case "BLEND":
		return AlphaModeBlend
	default:
		return AlphaModeOpaque
	}
}

func defaultPBRData() *PBRData {
	return &PBRData{
		BaseColorFactor: [4]float32{1, 1, 1, 1},
		MetallicFactor:  1,
		RoughnessFactor: 1,
	}
}

func (p *Parser) parsePBR(dp *documentPBRMetallicRoughness) (*PBRData, error) {
	pbr := defaultPBRData()
	if dp == nil {
		return pbr, nil
	}
	if dp.BaseColorFactor != nil {
		for i, v := range dp.BaseColorFactor {
			pbr.BaseColorFactor[i] = float32(v)
		}
	}
	if dp.MetallicFactor != nil {
		pbr.MetallicFactor = float32(*dp.MetallicFactor)
	}
	if dp.RoughnessFactor != nil {
		pbr.RoughnessFactor = float32(*dp.RoughnessFactor)
	}
	bct, err := parseTextureInfo(dp.BaseColorTexture, p.cfg.enabledExtensions)
	if err != nil {
		return nil, err
	}
	pbr.BaseColorTexture = bct
	mrt, err := parseTextureInfo(dp.MetallicRoughnessTexture, p.cfg.enabledExtensions)
	if err != nil {
		return nil, err
	}
	pbr.MetallicRoughnessTexture = mrt
	return pbr, nil
}

// parseMaterials converts every documentMaterial into a public Material,
// per spec.md §4.5.6 (PBR fields left as commented-out TODOs in the
// teacher's engine/loader/gltf_types.go are uncommented and wired here —
// see SPEC_FULL.md §4.5.6).
func (p *Parser) parseMaterials(docMaterials []documentMaterial) ([]Material, error) {
	out := make([]Material, 0, len(docMaterials))
	for i, dm := range docMaterials {
		m := Material{
			Name:        dm.Name,
			AlphaMode:   parseAlphaMode(dm.AlphaMode),
			AlphaCutoff: 0.5,
			DoubleSided: dm.DoubleSided,
		}
		if dm.AlphaCutoff != nil {
			m.AlphaCutoff = float32(*dm.AlphaCutoff)
		}
		if dm.EmissiveFactor != nil {
			for j, v := range dm.EmissiveFactor {
				m.EmissiveFactor[j] = float32(v)
			}
		}
		pbr, err := p.parsePBR(dm.PBRMetallicRoughness)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("materials", i, "pbrMetallicRoughness"), err)
		}
		m.PBRData = pbr

		nt, err := parseTextureInfo(dm.NormalTexture, p.cfg.enabledExtensions)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("materials", i, "normalTexture"), err)
		}
		m.NormalTexture = nt

		ot, err := parseTextureInfo(dm.OcclusionTexture, p.cfg.enabledExtensions)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("materials", i, "occlusionTexture"), err)
		}
		m.OcclusionTexture = ot

		et, err := parseTextureInfo(dm.EmissiveTexture, p.cfg.enabledExtensions)
		if err != nil {
			return nil, newError(InvalidGltf, fieldAt("materials", i, "emissiveTexture"), err)
		}
		m.EmissiveTexture = et

		out = append(out, m)
	}
	return out, nil
}
