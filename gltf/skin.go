package gltf

// parseSkins carries skeletal binding metadata through as inert data —
// Supplemented from original_source (SPEC_FULL.md §4.5.6); no bone
// hierarchy or inverse-bind-matrix math is evaluated here.
func parseSkins(docSkins []documentSkin) []Skin {
	out := make([]Skin, 0, len(docSkins))
	for _, ds := range docSkins {
		out = append(out, Skin{
			InverseBindMatricesAccessor: ds.InverseBindMatrices,
			SkeletonNodeIndex:           ds.Skeleton,
			Joints:                      ds.Joints,
			Name:                        ds.Name,
		})
	}
	return out
}

func parseInterpolation(s string) AnimationInterpolation {
	switch s {
	case "STEP":
		return InterpolationStep
	case "CUBICSPLINE":
		return InterpolationCubicSpline
	default:
		return InterpolationLinear
	}
}

// parseAnimations carries keyframe data through as inert data —
// Supplemented from original_source (SPEC_FULL.md §4.5.6); no sampler
// evaluation is performed.
func parseAnimations(docAnimations []documentAnimation) []Animation {
	out := make([]Animation, 0, len(docAnimations))
	for _, da := range docAnimations {
		anim := Animation{Name: da.Name}
		for _, dc := range da.Channels {
			anim.Channels = append(anim.Channels, AnimChannel{
				SamplerIndex:    dc.Sampler,
				TargetNodeIndex: dc.Target.Node,
				TargetPath:      dc.Target.Path,
			})
		}
		for _, ds := range da.Samplers {
			anim.Samplers = append(anim.Samplers, AnimSampler{
				InputAccessor:  ds.Input,
				OutputAccessor: ds.Output,
				Interpolation:  parseInterpolation(ds.Interpolation),
			})
		}
		out = append(out, anim)
	}
	return out
}
