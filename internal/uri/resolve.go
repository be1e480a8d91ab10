// Package uri classifies glTF URI strings (buffer.uri, image.uri) as either
// base64 data-URIs or relative filesystem paths, per the glTF 2.0 data-URI
// grammar "data:<mime-type>;base64,<payload>".
package uri

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/headbirdgames/fastgltf/internal/base64x"
)

// ErrInvalidGltf is returned when a data-URI violates the required grammar:
// missing ';' or ',' separators, an encoding other than base64, or a
// non-empty payload that does not decode as base64.
var ErrInvalidGltf = errors.New("uri: malformed data-URI")

// Kind distinguishes the two resolutions a URI can produce.
type Kind int

const (
	// KindVector means the URI was a data-URI; Data holds the decoded payload.
	KindVector Kind = iota
	// KindFilePath means the URI was a relative filesystem path; Path holds
	// the resolved, joined path. The caller is responsible for reading it.
	KindFilePath
)

// Resolved is the outcome of resolving a single URI.
type Resolved struct {
	Kind Kind

	// Data holds the decoded payload when Kind == KindVector.
	Data []byte
	// MimeType holds the MIME-type string parsed out of a data-URI's header
	// (e.g. "application/octet-stream"), or "" if the URI had none.
	MimeType string

	// Path holds the resolved filesystem path when Kind == KindFilePath.
	Path string
}

// Resolve classifies u relative to baseDir, decoding data-URI payloads with
// dec. See glTF 2.0 §4.3: a URI beginning with the literal "data" is parsed
// as <5 chars "data:"><mime-type>;base64,<payload>; anything else is joined
// onto baseDir as a relative filesystem path.
func Resolve(u string, baseDir string, dec base64x.Decoder) (Resolved, error) {
	if strings.HasPrefix(u, "data") {
		return resolveDataURI(u, dec)
	}
	return Resolved{Kind: KindFilePath, Path: filepath.Join(baseDir, u)}, nil
}

func resolveDataURI(u string, dec base64x.Decoder) (Resolved, error) {
	semi := strings.IndexByte(u, ';')
	comma := strings.IndexByte(u, ',')
	if semi < 0 || comma < 0 || comma < semi {
		return Resolved{}, ErrInvalidGltf
	}

	encoding := u[semi+1 : comma]
	if encoding != "base64" {
		return Resolved{}, ErrInvalidGltf
	}

	var mimeType string
	if semi >= 5 {
		mimeType = u[5:semi]
	}

	payload := u[comma+1:]
	data := dec.Decode(payload)
	if len(data) == 0 && len(payload) != 0 {
		return Resolved{}, ErrInvalidGltf
	}

	return Resolved{Kind: KindVector, Data: data, MimeType: mimeType}, nil
}
