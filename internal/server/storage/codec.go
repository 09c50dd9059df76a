package storage

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

var (
	ErrChecksum = errors.New("payload checksum mismatch")
	ErrCorrupt  = errors.New("corrupt payload")
)

// Database keys. Cube and column keys are a tag byte followed by big-endian int32
// coordinates.
const (
	tagCube   = 'c'
	tagColumn = 'l'
)

var keyWorldID = []byte("meta:world_id")

const payloadVersion = 1

const flagPopulated = 1 << 0

const cubeVolume = cubic.CubeSize * cubic.CubeSize * cubic.CubeSize

func cubeKey(p cubic.CubePos) []byte {
	k := make([]byte, 13)
	k[0] = tagCube
	binary.BigEndian.PutUint32(k[1:], uint32(int32(p.X)))
	binary.BigEndian.PutUint32(k[5:], uint32(int32(p.Y)))
	binary.BigEndian.PutUint32(k[9:], uint32(int32(p.Z)))
	return k
}

func columnKey(p cubic.ColumnPos) []byte {
	k := make([]byte, 9)
	k[0] = tagColumn
	binary.BigEndian.PutUint32(k[1:], uint32(int32(p.X)))
	binary.BigEndian.PutUint32(k[5:], uint32(int32(p.Z)))
	return k
}

// Payload layout: version byte, flags byte, xxhash64 of the raw body, then the
// body compressed with zstd.
const headerSize = 2 + 8

func (s *Store) seal(flags byte, raw []byte) []byte {
	out := make([]byte, headerSize, headerSize+len(raw)/4)
	out[0] = payloadVersion
	out[1] = flags
	binary.LittleEndian.PutUint64(out[2:], xxhash.Sum64(raw))
	return s.enc.EncodeAll(raw, out)
}

func (s *Store) open(data []byte, size int) (byte, []byte, error) {
	if len(data) < headerSize {
		return 0, nil, fmt.Errorf("%w: %d byte payload", ErrCorrupt, len(data))
	}
	if data[0] != payloadVersion {
		return 0, nil, fmt.Errorf("%w: version %d", ErrCorrupt, data[0])
	}
	raw, err := s.dec.DecodeAll(data[headerSize:], make([]byte, 0, size))
	if err != nil {
		return 0, nil, fmt.Errorf("decompress: %w", err)
	}
	if len(raw) != size {
		return 0, nil, fmt.Errorf("%w: body is %d bytes, want %d", ErrCorrupt, len(raw), size)
	}
	if xxhash.Sum64(raw) != binary.LittleEndian.Uint64(data[2:]) {
		return 0, nil, ErrChecksum
	}
	return data[1], raw, nil
}

func (s *Store) encodeCube(c *cubic.Cube) []byte {
	raw := make([]byte, cubeVolume*2)
	for i, b := range c.Blocks().Raw() {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(b))
	}
	var flags byte
	if c.Populated() {
		flags |= flagPopulated
	}
	return s.seal(flags, raw)
}

func (s *Store) decodeCube(pos cubic.CubePos, data []byte) (*cubic.Cube, error) {
	flags, raw, err := s.open(data, cubeVolume*2)
	if err != nil {
		return nil, err
	}
	p := cubic.NewPrimer()
	blocks := p.Raw()
	for i := range blocks {
		blocks[i] = block.State(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	c := cubic.NewCube(pos, p)
	c.SetPopulated(flags&flagPopulated != 0)
	return c, nil
}

func (s *Store) encodeColumn(c *cubic.Column) []byte {
	return s.seal(0, c.Biomes[:])
}

func (s *Store) decodeColumn(pos cubic.ColumnPos, data []byte) (*cubic.Column, error) {
	_, raw, err := s.open(data, len(cubic.Column{}.Biomes))
	if err != nil {
		return nil, err
	}
	c := cubic.NewColumn(pos.X, pos.Z)
	copy(c.Biomes[:], raw)
	return c, nil
}
