// Package anvil exports the legacy range of a cubic world (cube Y 0 to 15) as
// Minecraft 1.8 Anvil region files.
package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

const (
	sectorSize      = 4096
	headerSectors   = 2 // location table + timestamp table
	compressionZlib = 2
	regionSize      = 32
)

// RegionPos returns the region holding column pos.
func RegionPos(pos cubic.ColumnPos) (rx, rz int) {
	return pos.X >> 5, pos.Z >> 5
}

// SaveRegion writes chunks, keyed by column and holding uncompressed NBT, to the
// region file (rx, rz) in dir, replacing it atomically.
func SaveRegion(dir string, rx, rz int, chunks map[cubic.ColumnPos][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	type entry struct {
		index int
		data  []byte
	}
	entries := make([]entry, 0, len(chunks))
	for pos, nbtData := range chunks {
		if x, z := RegionPos(pos); x != rx || z != rz {
			return fmt.Errorf("column %v is outside region %d,%d", pos, rx, rz)
		}
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
		if err != nil {
			return fmt.Errorf("create zlib writer: %w", err)
		}
		if _, err := zw.Write(nbtData); err != nil {
			return fmt.Errorf("compress column %v: %w", pos, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress column %v: %w", pos, err)
		}
		entries = append(entries, entry{
			index: (pos.X & (regionSize - 1)) + (pos.Z&(regionSize-1))*regionSize,
			data:  buf.Bytes(),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int { return a.index - b.index })

	header := make([]byte, headerSectors*sectorSize)
	now := uint32(time.Now().Unix())
	var body bytes.Buffer
	sector := uint32(headerSectors)

	for _, e := range entries {
		// Length counts the compression byte, not the length field itself.
		length := uint32(len(e.data)) + 1
		sectors := (4 + length + sectorSize - 1) / sectorSize
		if sectors > 0xFF {
			return fmt.Errorf("chunk %d needs %d sectors", e.index, sectors)
		}

		binary.BigEndian.PutUint32(header[e.index*4:], sector<<8|sectors)
		binary.BigEndian.PutUint32(header[sectorSize+e.index*4:], now)

		body.Write(binary.BigEndian.AppendUint32(nil, length))
		body.WriteByte(compressionZlib)
		body.Write(e.data)
		body.Write(make([]byte, int(sectors)*sectorSize-int(4+length)))

		sector += sectors
	}

	path := filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(header, body.Bytes()...), 0o644); err != nil {
		return fmt.Errorf("write region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename region file: %w", err)
	}
	return nil
}
