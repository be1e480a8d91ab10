package gltf

import "github.com/headbirdgames/fastgltf/internal/ext"

// Extension identifies a recognized glTF extension for use with
// WithExtensions. It is a type alias over the internal registry's bit flag
// type so external callers never need to import internal/ext themselves.
type Extension = ext.Flags

// Recognized extensions, usable with WithExtensions.
const (
	ExtKHRTextureBasisu    = ext.KHRTextureBasisu
	ExtKHRTextureTransform = ext.KHRTextureTransform
	ExtMSFTTextureDDS      = ext.MSFTTextureDDS
)
