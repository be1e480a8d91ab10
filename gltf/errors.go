package gltf

import (
	"errors"
	"fmt"
)

// ErrorCode is the flat error enumeration surfaced to callers, per spec.md §7.
type ErrorCode int

const (
	// None indicates success; callers should not see a *Error with this code.
	None ErrorCode = iota
	// InvalidPath means a supplied filesystem path was not a regular file or directory as required.
	InvalidPath
	// InvalidJSON means the tokenizer rejected the input.
	InvalidJSON
	// InvalidGltf means the JSON was well-formed but violates the glTF schema.
	InvalidGltf
	// InvalidOrMissingAssetField means the top-level "asset" object is absent or malformed.
	InvalidOrMissingAssetField
	// InvalidGLB means the GLB header or chunk framing is wrong.
	InvalidGLB
	// UnsupportedExtensions means extensionsRequired names an extension unknown to this implementation.
	UnsupportedExtensions
	// MissingExtensions means extensionsRequired names a known extension not enabled by the caller.
	MissingExtensions
)

func (c ErrorCode) String() string {
	switch c {
	case None:
		return "None"
	case InvalidPath:
		return "InvalidPath"
	case InvalidJSON:
		return "InvalidJson"
	case InvalidGltf:
		return "InvalidGltf"
	case InvalidOrMissingAssetField:
		return "InvalidOrMissingAssetField"
	case InvalidGLB:
		return "InvalidGLB"
	case UnsupportedExtensions:
		return "UnsupportedExtensions"
	case MissingExtensions:
		return "MissingExtensions"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is the error type returned from every parser operation. Field names
// the offending JSON field when known, to distinguish "absent optional
// field" from "present but malformed" in diagnostics.
type Error struct {
	Code  ErrorCode
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		if e.Err != nil {
			return fmt.Sprintf("gltf: %s: %s: %v", e.Code, e.Field, e.Err)
		}
		return fmt.Sprintf("gltf: %s: %s", e.Code, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("gltf: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("gltf: %s", e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrInvalidGltf) style comparisons against the
// sentinel values below, matching on Code rather than identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code ErrorCode, field string, err error) *Error {
	return &Error{Code: code, Field: field, Err: err}
}

// Sentinel errors for errors.Is comparisons against a bare code, mirroring
// the teacher's package-level errInvalidGLTFVersion-style sentinels in
// engine/loader/gltf_parser.go.
var (
	ErrInvalidPath                 = &Error{Code: InvalidPath}
	ErrInvalidJSON                 = &Error{Code: InvalidJSON}
	ErrInvalidGltf                 = &Error{Code: InvalidGltf}
	ErrInvalidOrMissingAssetField  = &Error{Code: InvalidOrMissingAssetField}
	ErrInvalidGLB                  = &Error{Code: InvalidGLB}
	ErrUnsupportedExtensions       = &Error{Code: UnsupportedExtensions}
	ErrMissingExtensions           = &Error{Code: MissingExtensions}
)

// CodeOf extracts the ErrorCode from err, if it (or something it wraps) is a
// *Error. Returns None otherwise.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return None
}
