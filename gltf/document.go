package gltf

import "encoding/json"

// The types in this file mirror the top-level glTF JSON schema field-for-field,
// the way the teacher's engine/loader/gltf_types.go mirrors it with its
// gltfDocument/gltfBuffer/gltfMesh structs. They exist purely to decode into;
// every field then gets validated and copied into the public Asset types in
// asset.go by the per-entity parse* routines. Extensions payloads are kept as
// json.RawMessage so the ext package can decode only the ones it recognizes.

type document struct {
	Asset              documentAsset     `json:"asset"`
	ExtensionsUsed     []string          `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string          `json:"extensionsRequired,omitempty"`
	Scene              *int              `json:"scene,omitempty"`
	Scenes             []documentScene   `json:"scenes,omitempty"`
	Nodes              []documentNode    `json:"nodes,omitempty"`
	Meshes             []documentMesh    `json:"meshes,omitempty"`
	Accessors          []documentAccessor `json:"accessors,omitempty"`
	BufferViews        []documentBufferView `json:"bufferViews,omitempty"`
	Buffers            []documentBuffer  `json:"buffers,omitempty"`
	Materials          []documentMaterial `json:"materials,omitempty"`
	Textures           []documentTexture `json:"textures,omitempty"`
	Images             []documentImage   `json:"images,omitempty"`
	Samplers           []documentSampler `json:"samplers,omitempty"`
	Skins              []documentSkin    `json:"skins,omitempty"`
	Animations         []documentAnimation `json:"animations,omitempty"`
}

type documentAsset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
}

type documentScene struct {
	Nodes []int  `json:"nodes,omitempty"`
	Name  string `json:"name,omitempty"`
}

type documentNode struct {
	Mesh        *int              `json:"mesh,omitempty"`
	Skin        *int              `json:"skin,omitempty"`
	Children    []int             `json:"children,omitempty"`
	Matrix      []json.RawMessage `json:"matrix,omitempty"`
	Translation *[3]float64       `json:"translation,omitempty"`
	Rotation    *[4]float64       `json:"rotation,omitempty"`
	Scale       *[3]float64       `json:"scale,omitempty"`
	Weights     []float64         `json:"weights,omitempty"`
	Name        string            `json:"name,omitempty"`
}

type documentPrimitive struct {
	Attributes map[string]int       `json:"attributes"`
	Indices    *int                 `json:"indices,omitempty"`
	Material   *int                 `json:"material,omitempty"`
	Mode       *int                 `json:"mode,omitempty"`
	Targets    []map[string]int     `json:"targets,omitempty"`
}

type documentMesh struct {
	Primitives []documentPrimitive `json:"primitives"`
	Weights    []float64           `json:"weights,omitempty"`
	Name       string              `json:"name,omitempty"`
}

type documentAccessorSparseIndices struct {
	BufferView    int `json:"bufferView"`
	ByteOffset    int `json:"byteOffset,omitempty"`
	ComponentType int `json:"componentType"`
}

type documentAccessorSparseValues struct {
	BufferView int `json:"bufferView"`
	ByteOffset int `json:"byteOffset,omitempty"`
}

type documentAccessorSparse struct {
	Count   int                           `json:"count"`
	Indices documentAccessorSparseIndices `json:"indices"`
	Values  documentAccessorSparseValues  `json:"values"`
}

type documentAccessor struct {
	BufferView    *int                    `json:"bufferView,omitempty"`
	ByteOffset    int                     `json:"byteOffset,omitempty"`
	ComponentType int                     `json:"componentType"`
	Normalized    bool                    `json:"normalized,omitempty"`
	Count         int                     `json:"count"`
	Type          string                  `json:"type"`
	Max           []float64               `json:"max,omitempty"`
	Min           []float64               `json:"min,omitempty"`
	Sparse        *documentAccessorSparse `json:"sparse,omitempty"`
	Name          string                  `json:"name,omitempty"`
}

type documentBufferView struct {
	Buffer     int    `json:"buffer"`
	ByteOffset int    `json:"byteOffset,omitempty"`
	ByteLength int    `json:"byteLength"`
	ByteStride *int   `json:"byteStride,omitempty"`
	Target     *int   `json:"target,omitempty"`
	Name       string `json:"name,omitempty"`
}

type documentBuffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
	Name       string `json:"name,omitempty"`
}

type documentTextureInfo struct {
	Index      *int                       `json:"index"`
	TexCoord   int                        `json:"texCoord,omitempty"`
	Scale      *float64                   `json:"scale,omitempty"`
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

type documentPBRMetallicRoughness struct {
	BaseColorFactor          *[4]float64          `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *documentTextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float64             `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float64             `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *documentTextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

type documentMaterial struct {
	Name                 string                        `json:"name,omitempty"`
	PBRMetallicRoughness *documentPBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *documentTextureInfo          `json:"normalTexture,omitempty"`
	OcclusionTexture     *documentTextureInfo          `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *documentTextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *[3]float64                   `json:"emissiveFactor,omitempty"`
	AlphaMode            string                        `json:"alphaMode,omitempty"`
	AlphaCutoff          *float64                      `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                          `json:"doubleSided,omitempty"`
}

type documentTexture struct {
	Sampler    *int                       `json:"sampler,omitempty"`
	Source     *int                       `json:"source,omitempty"`
	Name       string                     `json:"name,omitempty"`
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

type documentImage struct {
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int   `json:"bufferView,omitempty"`
	Name       string `json:"name,omitempty"`
}

type documentSampler struct {
	MagFilter *int   `json:"magFilter,omitempty"`
	MinFilter *int   `json:"minFilter,omitempty"`
	WrapS     *int   `json:"wrapS,omitempty"`
	WrapT     *int   `json:"wrapT,omitempty"`
	Name      string `json:"name,omitempty"`
}

type documentSkin struct {
	InverseBindMatrices *int   `json:"inverseBindMatrices,omitempty"`
	Skeleton            *int   `json:"skeleton,omitempty"`
	Joints               []int `json:"joints"`
	Name                 string `json:"name,omitempty"`
}

type documentAnimationChannelTarget struct {
	Node *int   `json:"node,omitempty"`
	Path string `json:"path"`
}

type documentAnimationChannel struct {
	Sampler int                            `json:"sampler"`
	Target  documentAnimationChannelTarget `json:"target"`
}

type documentAnimationSampler struct {
	Input         int    `json:"input"`
	Output        int    `json:"output"`
	Interpolation string `json:"interpolation,omitempty"`
}

type documentAnimation struct {
	Channels []documentAnimationChannel `json:"channels"`
	Samplers []documentAnimationSampler `json:"samplers"`
	Name     string                     `json:"name,omitempty"`
}
