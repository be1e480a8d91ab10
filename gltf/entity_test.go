package gltf

import "testing"

func TestParseJSONBytesSkinsAndAnimationsCarryThroughAsData(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"skins": [{"joints": [0, 1], "skeleton": 0, "inverseBindMatrices": 2}],
		"nodes": [{}, {}],
		"animations": [{
			"channels": [{"sampler": 0, "target": {"node": 0, "path": "translation"}}],
			"samplers": [{"input": 0, "output": 1, "interpolation": "STEP"}]
		}]
	}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}

	skin := asset.Skins[0]
	if len(skin.Joints) != 2 || skin.SkeletonNodeIndex == nil || *skin.SkeletonNodeIndex != 0 {
		t.Fatalf("Skin = %+v", skin)
	}
	if skin.InverseBindMatricesAccessor == nil || *skin.InverseBindMatricesAccessor != 2 {
		t.Fatalf("InverseBindMatricesAccessor = %v, want 2", skin.InverseBindMatricesAccessor)
	}

	anim := asset.Animations[0]
	if len(anim.Channels) != 1 || anim.Channels[0].TargetPath != "translation" {
		t.Fatalf("Animation.Channels = %+v", anim.Channels)
	}
	if anim.Samplers[0].Interpolation != InterpolationStep {
		t.Fatalf("Interpolation = %v, want Step", anim.Samplers[0].Interpolation)
	}
}

func TestParseJSONBytesAnimationDefaultInterpolationIsLinear(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"animations": [{"channels": [], "samplers": [{"input": 0, "output": 1}]}]
	}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}
	if asset.Animations[0].Samplers[0].Interpolation != InterpolationLinear {
		t.Fatalf("Interpolation = %v, want Linear", asset.Animations[0].Samplers[0].Interpolation)
	}
}

func TestParseJSONBytesMeshMorphTargetsAndWeights(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"meshes": [{
			"primitives": [{"attributes": {"POSITION": 0}, "targets": [{"POSITION": 1}]}],
			"weights": [0.5]
		}]
	}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}
	mesh := asset.Meshes[0]
	if len(mesh.Weights) != 1 || mesh.Weights[0] != 0.5 {
		t.Fatalf("Mesh.Weights = %v", mesh.Weights)
	}
	if len(mesh.Primitives[0].Targets) != 1 || mesh.Primitives[0].Targets[0]["POSITION"] != 1 {
		t.Fatalf("Primitive.Targets = %v", mesh.Primitives[0].Targets)
	}
	if mesh.Primitives[0].Type != PrimitiveModeTriangles {
		t.Fatalf("Primitive.Type default = %v, want Triangles", mesh.Primitives[0].Type)
	}
}

func TestParseJSONBytesNodeWithMatrixSetsHasMatrix(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"nodes": [{"matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 5,6,7,1]}]
	}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}
	n := asset.Nodes[0]
	if !n.HasMatrix {
		t.Fatalf("HasMatrix = false, want true")
	}
	if n.Matrix[12] != 5 || n.Matrix[13] != 6 || n.Matrix[14] != 7 {
		t.Fatalf("Matrix translation column = %v", n.Matrix[12:15])
	}
}

func TestParseJSONBytesAccessorMinMaxAndSparseCarryThroughAsMetadata(t *testing.T) {
	doc := `{
		"asset": {"version": "2.0"},
		"accessors": [{
			"componentType": 5126,
			"count": 4,
			"type": "VEC3",
			"min": [0, 0, 0],
			"max": [1, 1, 1],
			"sparse": {
				"count": 1,
				"indices": {"bufferView": 0, "componentType": 5123},
				"values": {"bufferView": 1}
			}
		}]
	}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}
	a := asset.Accessors[0]
	if len(a.Min) != 3 || len(a.Max) != 3 {
		t.Fatalf("Min/Max = %v / %v", a.Min, a.Max)
	}
	if a.Sparse == nil || a.Sparse.Count != 1 {
		t.Fatalf("Sparse = %+v", a.Sparse)
	}
	if a.Sparse.Indices.ComponentType != ComponentTypeUnsignedShort {
		t.Fatalf("Sparse.Indices.ComponentType = %v", a.Sparse.Indices.ComponentType)
	}
}

func TestParseJSONBytesSamplerDefaultsToRepeatWrap(t *testing.T) {
	doc := `{"asset": {"version": "2.0"}, "samplers": [{}]}`
	asset, err := New().ParseJSONBytes([]byte(doc), "")
	if err != nil {
		t.Fatalf("ParseJSONBytes() error = %v", err)
	}
	s := asset.Samplers[0]
	if s.WrapS != WrapRepeat || s.WrapT != WrapRepeat {
		t.Fatalf("Sampler wrap defaults = (%d, %d), want (%d, %d)", s.WrapS, s.WrapT, WrapRepeat, WrapRepeat)
	}
}
