package glb

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func buildGLB(t *testing.T, jsonBytes, binBytes []byte, includeBIN bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	length := uint32(headerSize + chunkHeaderSize + len(jsonBytes))
	if includeBIN {
		length += uint32(chunkHeaderSize + len(binBytes))
	}

	binary.Write(&buf, binary.LittleEndian, header{Magic: Magic, Version: Version, Length: length})
	binary.Write(&buf, binary.LittleEndian, chunkHeader{Length: uint32(len(jsonBytes)), Type: ChunkTypeJSON})
	buf.Write(jsonBytes)
	if includeBIN {
		binary.Write(&buf, binary.LittleEndian, chunkHeader{Length: uint32(len(binBytes)), Type: ChunkTypeBIN})
		buf.Write(binBytes)
	}

	return buf.Bytes()
}

func TestReadJSONOnly(t *testing.T) {
	jsonBytes := []byte(`{"asset":{"version":"2.0"}}`)
	data := buildGLB(t, jsonBytes, nil, false)

	c, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(c.JSON, jsonBytes) {
		t.Fatalf("JSON = %s, want %s", c.JSON, jsonBytes)
	}
	if c.HasBIN {
		t.Fatalf("HasBIN = true, want false")
	}
}

func TestReadJSONAndBIN(t *testing.T) {
	jsonBytes := []byte(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":4}]}`)
	binBytes := []byte{1, 2, 3, 4}
	data := buildGLB(t, jsonBytes, binBytes, true)

	c, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !c.HasBIN {
		t.Fatalf("HasBIN = false, want true")
	}
	if !bytes.Equal(c.BIN, binBytes) {
		t.Fatalf("BIN = %v, want %v", c.BIN, binBytes)
	}
	wantOffset := int64(headerSize + chunkHeaderSize + len(jsonBytes) + chunkHeaderSize)
	if c.BINOffset != wantOffset {
		t.Fatalf("BINOffset = %d, want %d", c.BINOffset, wantOffset)
	}
}

func TestReadBadMagic(t *testing.T) {
	data := buildGLB(t, []byte(`{}`), nil, false)
	data[0] = 0x00
	if _, err := Read(data); err == nil {
		t.Fatalf("Read() error = nil, want ErrInvalidGLB")
	}
}

func TestReadBadVersion(t *testing.T) {
	data := buildGLB(t, []byte(`{}`), nil, false)
	binary.LittleEndian.PutUint32(data[4:8], 3)
	if _, err := Read(data); err == nil {
		t.Fatalf("Read() error = nil, want ErrInvalidGLB")
	}
}

func TestReadFirstChunkNotJSON(t *testing.T) {
	var buf bytes.Buffer
	jsonBytes := []byte(`{}`)
	binary.Write(&buf, binary.LittleEndian, header{Magic: Magic, Version: Version, Length: uint32(headerSize + chunkHeaderSize + len(jsonBytes))})
	binary.Write(&buf, binary.LittleEndian, chunkHeader{Length: uint32(len(jsonBytes)), Type: ChunkTypeBIN})
	buf.Write(jsonBytes)

	if _, err := Read(buf.Bytes()); err == nil {
		t.Fatalf("Read() error = nil, want ErrInvalidGLB")
	}
}

func TestReadTooSmall(t *testing.T) {
	if _, err := Read([]byte{1, 2, 3}); err == nil {
		t.Fatalf("Read() error = nil, want ErrInvalidGLB")
	}
}
