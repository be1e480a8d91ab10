package gltf

import "encoding/json"

func parsePrimitiveMode(v *int) PrimitiveMode {
	if v == nil {
		return PrimitiveModeTriangles
	}
	return PrimitiveMode(*v)
}

// parseMeshes builds a Mesh per documentMesh, skipping any mesh whose
// primitives array is absent or empty rather than adding an empty Mesh —
// per spec.md §4.5.2 and §8 invariant 1, meshes may be shorter than
// docMeshes for exactly this reason.
func parseMeshes(docMeshes []documentMesh) []Mesh {
	out := make([]Mesh, 0, len(docMeshes))
	for _, dm := range docMeshes {
		if len(dm.Primitives) == 0 {
			continue
		}
		mesh := Mesh{Name: dm.Name, Weights: toFloat32Slice(dm.Weights)}
		for _, dp := range dm.Primitives {
			prim := Primitive{
				Attributes:      dp.Attributes,
				Type:            parsePrimitiveMode(dp.Mode),
				IndicesAccessor: dp.Indices,
				MaterialIndex:   dp.Material,
				Targets:         dp.Targets,
			}
			mesh.Primitives = append(mesh.Primitives, prim)
		}
		out = append(out, mesh)
	}
	return out
}

func identityScale() [3]float32 { return [3]float32{1, 1, 1} }

func parseNodes(docNodes []documentNode) []Node {
	out := make([]Node, 0, len(docNodes))
	for _, dn := range docNodes {
		n := Node{
			MeshIndex: dn.Mesh,
			SkinIndex: dn.Skin,
			Children:  dn.Children,
			Name:      dn.Name,
			Matrix:    [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
			Scale:     identityScale(),
			Rotation:  [4]float32{0, 0, 0, 1},
			Weights:   toFloat32Slice(dn.Weights),
		}
		if m, ok := decodeMatrix(dn.Matrix); ok {
			n.HasMatrix = true
			n.Matrix = m
		}
		if dn.Translation != nil {
			for i, v := range dn.Translation {
				n.Translation[i] = float32(v)
			}
		}
		if dn.Rotation != nil {
			for i, v := range dn.Rotation {
				n.Rotation[i] = float32(v)
			}
		}
		if dn.Scale != nil {
			for i, v := range dn.Scale {
				n.Scale[i] = float32(v)
			}
		}
		out = append(out, n)
	}
	return out
}

// decodeMatrix coerces a raw "matrix" array element-wise into [16]float32.
// A malformed element (wrong length, non-numeric) clears hasMatrix instead
// of failing the whole document decode, per spec.md's description of how
// a bad matrix should degrade (Design Notes (ii)): the node falls back to
// its separate translation/rotation/scale fields rather than erroring.
func decodeMatrix(raw []json.RawMessage) (m [16]float32, ok bool) {
	if len(raw) != 16 {
		return m, false
	}
	for i, elem := range raw {
		var v float64
		if err := json.Unmarshal(elem, &v); err != nil {
			return [16]float32{}, false
		}
		m[i] = float32(v)
	}
	return m, true
}

func parseScenes(docScenes []documentScene) []Scene {
	out := make([]Scene, 0, len(docScenes))
	for _, ds := range docScenes {
		out = append(out, Scene{NodeIndices: ds.Nodes, Name: ds.Name})
	}
	return out
}
