// Package glb reads the binary glTF (GLB) container: a fixed 12-byte header
// followed by a JSON chunk and an optional BIN chunk. Grounded on the
// teacher's engine/loader/gltf_parser.go parseGLB, on other_examples'
// gviegas-neo3__glb.go chunk layout, and on netisu-ntsm/ntsm.go's structurally
// similar fixed-header-plus-payload container.
package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// Magic is the required glTF 2.0 GLB header magic number.
	Magic uint32 = 0x46546C67
	// Version is the only GLB version this reader accepts.
	Version uint32 = 2

	// ChunkTypeJSON identifies the (required, first) JSON chunk.
	ChunkTypeJSON uint32 = 0x4E4F534A
	// ChunkTypeBIN identifies the (optional, second) binary chunk.
	ChunkTypeBIN uint32 = 0x004E4942

	headerSize = 12
	chunkHeaderSize = 8
)

// ErrInvalidGLB is returned for any header or chunk-framing violation.
var ErrInvalidGLB = errors.New("glb: invalid container")

type header struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

type chunkHeader struct {
	Length uint32
	Type   uint32
}

// Container is the result of reading a GLB blob: the embedded JSON chunk
// bytes and, if present, the BIN chunk bytes and its byte offset within the
// original stream (the offset is useful to lazily reference, rather than
// eagerly copy, the binary payload).
type Container struct {
	JSON []byte

	HasBIN    bool
	BIN       []byte
	BINOffset int64
	BINLength int64
}

// Read validates the GLB header and walks its chunk sequence out of data,
// which must hold the entire GLB file contents.
func Read(data []byte) (Container, error) {
	if len(data) < headerSize {
		return Container{}, fmt.Errorf("%w: file too small for header", ErrInvalidGLB)
	}

	r := bytes.NewReader(data)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Container{}, fmt.Errorf("%w: %v", ErrInvalidGLB, err)
	}
	if h.Magic != Magic {
		return Container{}, fmt.Errorf("%w: bad magic", ErrInvalidGLB)
	}
	if h.Version != Version {
		return Container{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidGLB, h.Version)
	}

	var jsonChunk chunkHeader
	if err := binary.Read(r, binary.LittleEndian, &jsonChunk); err != nil {
		return Container{}, fmt.Errorf("%w: missing JSON chunk header: %v", ErrInvalidGLB, err)
	}
	if jsonChunk.Type != ChunkTypeJSON {
		return Container{}, fmt.Errorf("%w: first chunk is not JSON", ErrInvalidGLB)
	}

	jsonData := make([]byte, jsonChunk.Length)
	if _, err := io.ReadFull(r, jsonData); err != nil {
		return Container{}, fmt.Errorf("%w: truncated JSON chunk: %v", ErrInvalidGLB, err)
	}

	out := Container{JSON: jsonData}

	// A BIN chunk header is only present if at least chunkHeaderSize bytes
	// remain according to the declared file length.
	consumed := int64(headerSize) + int64(chunkHeaderSize) + int64(jsonChunk.Length)
	if int64(h.Length) < consumed+chunkHeaderSize {
		return out, nil
	}

	var binChunk chunkHeader
	if err := binary.Read(r, binary.LittleEndian, &binChunk); err != nil {
		return Container{}, fmt.Errorf("%w: malformed BIN chunk header: %v", ErrInvalidGLB, err)
	}
	if binChunk.Type != ChunkTypeBIN {
		return Container{}, fmt.Errorf("%w: second chunk is not BIN", ErrInvalidGLB)
	}

	binOffset := consumed + chunkHeaderSize
	binData := make([]byte, binChunk.Length)
	if _, err := io.ReadFull(r, binData); err != nil {
		return Container{}, fmt.Errorf("%w: truncated BIN chunk: %v", ErrInvalidGLB, err)
	}

	out.HasBIN = true
	out.BIN = binData
	out.BINOffset = binOffset
	out.BINLength = int64(binChunk.Length)

	return out, nil
}
