// Package gltf parses glTF 2.0 assets — the JSON-plus-binary 3D scene
// interchange format — into a validated, in-memory Asset graph. It accepts
// standalone JSON ("text glTF", with a containing directory for relative
// URIs) and binary GLB containers. Cross-references between entities are
// expressed as zero-based indices into the Asset's sequences; there are no
// back-pointers and no cycles.
package gltf

// DataSourceKind discriminates the payload location of a Buffer or Image.
type DataSourceKind int

const (
	// DataSourceNone means the field is unset or invalid.
	DataSourceNone DataSourceKind = iota
	// DataSourceVector means the payload is an owned byte slice with a MIME
	// type (data-URIs, and eagerly-loaded GLB binary chunks).
	DataSourceVector
	// DataSourceFilePath means the payload lives in an external file,
	// optionally at a byte-range offset (lazily-loaded GLB binary chunks,
	// and relative-path buffer/image URIs).
	DataSourceFilePath
	// DataSourceBufferView means the payload is reachable via a bufferView
	// index plus MIME type (image sources only).
	DataSourceBufferView
)

// DataSource is the tagged-union payload location attached to Buffer and
// Image. Go has no native sum type, so this generalizes the teacher's
// gltfBuffer{URI string; Data []byte} pair (engine/loader/gltf_types.go)
// into an explicit Kind enum wide enough to also cover the lazy file-range
// and bufferView-sourced cases the teacher's renderer-focused loader never
// needed.
type DataSource struct {
	Kind DataSourceKind

	// Bytes holds the payload when Kind == DataSourceVector.
	Bytes []byte

	// Path holds the resolved filesystem path when Kind == DataSourceFilePath.
	Path string
	// FileByteOffset is the starting offset within Path, when Kind ==
	// DataSourceFilePath (used for GLB BIN chunks referenced lazily).
	FileByteOffset int64
	// FileByteLength is the payload length within Path, when Kind ==
	// DataSourceFilePath and the length is known up front; 0 means unknown
	// (read to EOF or to the declared byteLength).
	FileByteLength int64

	// BufferViewIndex holds the bufferView reference when Kind ==
	// DataSourceBufferView.
	BufferViewIndex int

	// MimeType is attached for DataSourceVector and DataSourceBufferView,
	// and optionally for DataSourceFilePath when a mimeType field was
	// present or inferred.
	MimeType MimeType
}

// ComponentType is the WebGL-enum component type of an Accessor.
type ComponentType int

const (
	ComponentTypeByte          ComponentType = 5120
	ComponentTypeUnsignedByte  ComponentType = 5121
	ComponentTypeShort         ComponentType = 5122
	ComponentTypeUnsignedShort ComponentType = 5123
	ComponentTypeUnsignedInt   ComponentType = 5125
	ComponentTypeFloat         ComponentType = 5126
	ComponentTypeDouble        ComponentType = 5130
)

// AccessorType is the element shape of an Accessor (SCALAR, VEC2, ...).
type AccessorType int

const (
	AccessorTypeScalar AccessorType = iota
	AccessorTypeVec2
	AccessorTypeVec3
	AccessorTypeVec4
	AccessorTypeMat2
	AccessorTypeMat3
	AccessorTypeMat4
)

// PrimitiveMode is the rendering topology of a Primitive.
type PrimitiveMode int

const (
	PrimitiveModePoints PrimitiveMode = iota
	PrimitiveModeLines
	PrimitiveModeLineLoop
	PrimitiveModeLineStrip
	PrimitiveModeTriangles
	PrimitiveModeTriangleStrip
	PrimitiveModeTriangleFan
)

// BufferTarget is the intended GPU usage of a BufferView.
type BufferTarget int

const (
	TargetArrayBuffer        BufferTarget = 34962
	TargetElementArrayBuffer BufferTarget = 34963
)

// Buffer is raw binary data, resolved from a URI, a data-URI, or a GLB BIN chunk.
type Buffer struct {
	ByteLength int
	Name       string
	Source     DataSource
}

// BufferView is a contiguous sub-range of a Buffer.
type BufferView struct {
	BufferIndex int
	ByteLength  int
	ByteOffset  int
	ByteStride  *int
	Target      *BufferTarget
	Name        string
}

// AccessorSparseIndices locates the sparse index array within a bufferView.
type AccessorSparseIndices struct {
	BufferViewIndex int
	ByteOffset      int
	ComponentType   ComponentType
}

// AccessorSparseValues locates the sparse value array within a bufferView.
type AccessorSparseValues struct {
	BufferViewIndex int
	ByteOffset      int
}

// AccessorSparse is parsed as inert metadata; this parser does not apply
// sparse substitution (that is accessor-data processing, out of scope per
// spec.md §1's Non-goals).
type AccessorSparse struct {
	Count   int
	Indices AccessorSparseIndices
	Values  AccessorSparseValues
}

// Accessor describes how to interpret a typed view into a BufferView.
type Accessor struct {
	ComponentType ComponentType
	Type          AccessorType
	Count         int
	ByteOffset    int
	Normalized    bool
	BufferView    *int
	Name          string
	Max           []float32
	Min           []float32
	Sparse        *AccessorSparse
}

// MimeType is the bijective mapping of recognized MIME-type strings, per
// spec.md §4.5.3.
type MimeType int

const (
	MimeTypeNone MimeType = iota
	MimeTypeJPEG
	MimeTypePNG
	MimeTypeKTX2
	MimeTypeDDS
	MimeTypeGltfBuffer
	MimeTypeOctetStream
)

// ParseMimeType maps a MIME-type string to its MimeType, or MimeTypeNone for
// anything unrecognized.
func ParseMimeType(s string) MimeType {
	switch s {
	case "image/jpeg":
		return MimeTypeJPEG
	case "image/png":
		return MimeTypePNG
	case "image/ktx2":
		return MimeTypeKTX2
	case "image/vnd-ms.dds":
		return MimeTypeDDS
	case "application/gltf-buffer":
		return MimeTypeGltfBuffer
	case "application/octet-stream":
		return MimeTypeOctetStream
	default:
		return MimeTypeNone
	}
}

// Image is a texture image source, reachable via URI or bufferView.
type Image struct {
	Source     DataSource
	MimeType   MimeType
	BufferView *int
	Name       string
}

// Sampler defines texture sampling parameters.
type Sampler struct {
	MagFilter *int
	MinFilter *int
	WrapS     int
	WrapT     int
	Name      string
}

const (
	WrapClampToEdge    = 33071
	WrapMirroredRepeat = 33648
	WrapRepeat         = 10497
)

// Texture combines an image source and a sampler. ImageIndex and
// FallbackImageIndex are nil when no extension or base "source" supplied an
// image, per spec.md §4.5.5 ("the texture's imageIndex is left sentinel-valued").
type Texture struct {
	ImageIndex         *int
	FallbackImageIndex *int
	SamplerIndex       *int
	Name               string
}

// TextureInfo references a Texture with UV selection and an optional
// KHR_texture_transform UV transform.
type TextureInfo struct {
	TextureIndex  int
	TexCoordIndex int
	// Scale is semantically meaningful only when this TextureInfo is used
	// as a Material.NormalTexture.
	Scale    float32
	Rotation float32
	UVOffset [2]float32
	UVScale  [2]float32
}

// PBRData is the metallic-roughness material model.
type PBRData struct {
	BaseColorFactor           [4]float32
	MetallicFactor            float32
	RoughnessFactor           float32
	BaseColorTexture          *TextureInfo
	MetallicRoughnessTexture  *TextureInfo
}

// AlphaMode controls how Material.AlphaCutoff is interpreted.
type AlphaMode int

const (
	AlphaModeOpaque AlphaMode = iota
	AlphaModeMask
	AlphaModeBlend
)

// Material defines the appearance of a Primitive.
type Material struct {
	EmissiveFactor  [3]float32
	NormalTexture   *TextureInfo
	OcclusionTexture *TextureInfo
	EmissiveTexture *TextureInfo
	PBRData         *PBRData
	Name            string
	AlphaMode       AlphaMode
	AlphaCutoff     float32
	DoubleSided     bool
}

// Primitive defines geometry for rendering: an attribute map from semantic
// name to accessor index, plus topology, indices, and material.
type Primitive struct {
	Attributes     map[string]int
	Type           PrimitiveMode
	IndicesAccessor *int
	MaterialIndex  *int
	// Targets are morph-target attribute maps, carried as inert data; no
	// morph blending is evaluated (geometry processing is out of scope).
	Targets []map[string]int
}

// Mesh is a set of primitives to be rendered.
type Mesh struct {
	Primitives []Primitive
	Name       string
	// Weights are default morph-target weights, carried as inert data.
	Weights []float32
}

// Node is a node in the scene's transform hierarchy.
type Node struct {
	MeshIndex   *int
	Children    []int
	HasMatrix   bool
	Matrix      [16]float32
	Scale       [3]float32
	Translation [3]float32
	Rotation    [4]float32
	Name        string
	SkinIndex   *int
	// Weights are default morph-target weights, carried as inert data.
	Weights []float32
}

// Scene is a set of root nodes to render.
type Scene struct {
	NodeIndices []int
	Name        string
}

// Skin defines the skeletal binding metadata for a mesh (joint node
// indices, inverse bind matrices accessor, skeleton root). No animation
// sampler evaluation or bone hierarchy processing is performed.
type Skin struct {
	InverseBindMatricesAccessor *int
	SkeletonNodeIndex           *int
	Joints                      []int
	Name                        string
}

// AnimationInterpolation is the keyframe interpolation mode of an AnimSampler.
type AnimationInterpolation int

const (
	InterpolationLinear AnimationInterpolation = iota
	InterpolationStep
	InterpolationCubicSpline
)

// AnimSampler defines keyframe data; no sampler evaluation is performed.
type AnimSampler struct {
	InputAccessor  int
	OutputAccessor int
	Interpolation  AnimationInterpolation
}

// AnimChannel connects an AnimSampler to a target node/property.
type AnimChannel struct {
	SamplerIndex    int
	TargetNodeIndex *int
	TargetPath      string
}

// Animation is the data-model representation of a keyframe animation; no
// evaluation is performed (out of scope per spec.md §1's Non-goals).
type Animation struct {
	Channels []AnimChannel
	Samplers []AnimSampler
	Name     string
}

// AssetInfo carries the glTF asset metadata block.
type AssetInfo struct {
	Version    string
	MinVersion string
	Generator  string
	Copyright  string
}

// Asset is the root aggregate: ordered sequences of every entity, each
// addressed by its zero-based position. The parser guarantees every
// index-valued cross-reference it emits names a position that was literally
// present in the input; it does not itself validate that position exists in
// the target sequence (spec.md §3's stated invariant — that is a post-parse
// validation duty left to the caller).
type Asset struct {
	Info               AssetInfo
	DefaultSceneIndex  *int
	ExtensionsUsed     []string
	Accessors          []Accessor
	Buffers            []Buffer
	BufferViews        []BufferView
	Images             []Image
	Materials          []Material
	Meshes             []Mesh
	Nodes              []Node
	Scenes             []Scene
	Textures           []Texture
	Samplers           []Sampler
	Skins              []Skin
	Animations         []Animation
}
