// Package ext implements the extension registry: the set of glTF extension
// identifiers this parser recognizes, expressed as bit flags, plus a
// name-to-flag lookup table used to classify entries in extensionsRequired.
package ext

// Flags is a bitset of recognized/enabled extensions.
type Flags uint32

const (
	// KHRTextureBasisu lets a texture point at a KTX2/Basis Universal source image.
	KHRTextureBasisu Flags = 1 << iota
	// KHRTextureTransform augments TextureInfo with an affine UV transform.
	KHRTextureTransform
	// MSFTTextureDDS lets a texture point at a DDS source image.
	MSFTTextureDDS
)

// names maps a glTF extension identifier string to its Flags bit. Extending
// the recognized extension set means adding a constant above and an entry
// here; the rest of the parser consults the registry only by bit test, never
// by name.
var names = map[string]Flags{
	"KHR_texture_basisu":    KHRTextureBasisu,
	"KHR_texture_transform": KHRTextureTransform,
	"MSFT_texture_dds":      MSFTTextureDDS,
}

// Has reports whether flag is set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Lookup resolves an extension identifier string to its Flags bit. ok is
// false when name is not known to this implementation at all.
func Lookup(name string) (flag Flags, ok bool) {
	flag, ok = names[name]
	return
}
