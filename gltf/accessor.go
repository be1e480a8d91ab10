package gltf

func parseAccessorType(s string) (AccessorType, bool) {
	switch s {
	case "SCALAR":
		return AccessorTypeScalar, true
	case "VEC2":
		return AccessorTypeVec2, true
	case "VEC3":
		return AccessorTypeVec3, true
	case "VEC4":
		return AccessorTypeVec4, true
	case "MAT2":
		return AccessorTypeMat2, true
	case "MAT3":
		return AccessorTypeMat3, true
	case "MAT4":
		return AccessorTypeMat4, true
	default:
		return 0, false
	}
}

func componentTypeValid(ct ComponentType, allowDouble bool) bool {
	switch ct {
	case ComponentTypeByte, ComponentTypeUnsignedByte, ComponentTypeShort,
		ComponentTypeUnsignedShort, ComponentTypeUnsignedInt, ComponentTypeFloat:
		return true
	case ComponentTypeDouble:
		return allowDouble
	default:
		return false
	}
}

func toFloat32Slice(in []float64) []float32 {
	if in == nil {
		return nil
	}
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}

// parseAccessors converts every documentAccessor into a public Accessor,
// per spec.md §4.5.2. componentType and type are required fields; an
// unrecognized or disallowed value is InvalidGltf. min/max and sparse are
// carried through as inert metadata (Supplemented from original_source,
// see SPEC_FULL.md §4.5.6) rather than validated against count/type.
func (p *Parser) parseAccessors(docAccessors []documentAccessor) ([]Accessor, error) {
	out := make([]Accessor, 0, len(docAccessors))
	for i, da := range docAccessors {
		at, ok := parseAccessorType(da.Type)
		if !ok {
			return nil, newError(InvalidGltf, fieldAt("accessors", i, "type"), nil)
		}
		ct := ComponentType(da.ComponentType)
		if !componentTypeValid(ct, p.cfg.allowDouble) {
			return nil, newError(InvalidGltf, fieldAt("accessors", i, "componentType"), nil)
		}
		a := Accessor{
			ComponentType: ct,
			Type:          at,
			Count:         da.Count,
			ByteOffset:    da.ByteOffset,
			Normalized:    da.Normalized,
			BufferView:    da.BufferView,
			Name:          da.Name,
			Max:           toFloat32Slice(da.Max),
			Min:           toFloat32Slice(da.Min),
		}
		if da.Sparse != nil {
			a.Sparse = &AccessorSparse{
				Count: da.Sparse.Count,
				Indices: AccessorSparseIndices{
					BufferViewIndex: da.Sparse.Indices.BufferView,
					ByteOffset:      da.Sparse.Indices.ByteOffset,
					ComponentType:   ComponentType(da.Sparse.Indices.ComponentType),
				},
				Values: AccessorSparseValues{
					BufferViewIndex: da.Sparse.Values.BufferView,
					ByteOffset:      da.Sparse.Values.ByteOffset,
				},
			}
		}
		out = append(out, a)
	}
	return out, nil
}
