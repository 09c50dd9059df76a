package anvil

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

func TestSetNibble(t *testing.T) {
	arr := make([]byte, 4)
	setNibble(arr, 0, 0x0A)
	setNibble(arr, 1, 0x0B)
	setNibble(arr, 4, 0x03)
	setNibble(arr, 5, 0x07)
	if arr[0] != 0xBA || arr[2] != 0x73 {
		t.Errorf("arr = % x, want ba 00 73 00", arr)
	}
}

func testColumn() *Column {
	col := &Column{Column: cubic.NewColumn(1, 2)}
	p := cubic.NewPrimer()
	p.SetBlock(0, 0, 0, block.Stone)
	p.SetBlock(3, 4, 5, block.New(300, 5))
	col.Cubes[0] = cubic.NewCube(cubic.CubePos{X: 1, Y: 0, Z: 2}, p)

	q := cubic.NewPrimer()
	q.SetBlock(0, 4, 0, block.Grass)
	col.Cubes[4] = cubic.NewCube(cubic.CubePos{X: 1, Y: 4, Z: 2}, q)

	col.Cubes[9] = cubic.NewCube(cubic.CubePos{X: 1, Y: 9, Z: 2}, nil)
	return col
}

func TestHeightMap(t *testing.T) {
	hm := testColumn().heightMap()
	if hm[0] != 69 {
		t.Errorf("heightMap[0] = %d, want 69", hm[0])
	}
	if hm[5*16+3] != 5 {
		t.Errorf("heightMap[83] = %d, want 5", hm[5*16+3])
	}
	if hm[1] != 0 {
		t.Errorf("heightMap[1] = %d, want 0", hm[1])
	}
}

func TestEncode(t *testing.T) {
	col := testColumn()
	data, err := col.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if data[0] != 10 || data[len(data)-1] != 0 || data[len(data)-2] != 0 {
		t.Fatal("document should be a root compound holding Level")
	}
	for _, name := range []string{"Sections", "Blocks", "Add", "Data", "Biomes", "HeightMap"} {
		if !bytes.Contains(data, []byte(name)) {
			t.Errorf("encoded chunk has no %s tag", name)
		}
	}

	// Two sections: the empty cube at Y=9 is left out.
	i := bytes.Index(data, []byte("Sections"))
	if n := binary.BigEndian.Uint32(data[i+9:]); n != 2 {
		t.Errorf("section count = %d, want 2", n)
	}

	if col.populated() {
		t.Error("unpopulated cubes should not mark the chunk populated")
	}
	for _, c := range col.Cubes {
		if c != nil {
			c.SetPopulated(true)
		}
	}
	if !col.populated() {
		t.Error("chunk should be populated once every cube is")
	}
}

func readChunk(t *testing.T, path string, index int) []byte {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open region file: %v", err)
	}
	defer f.Close()

	var locations [sectorSize]byte
	if _, err := io.ReadFull(f, locations[:]); err != nil {
		t.Fatalf("read locations: %v", err)
	}
	entry := binary.BigEndian.Uint32(locations[index*4:])
	if entry == 0 {
		t.Fatalf("no chunk at index %d", index)
	}
	if _, err := f.Seek(int64(entry>>8)*sectorSize, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	var header [5]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		t.Fatal(err)
	}
	if header[4] != compressionZlib {
		t.Fatalf("compression = %d, want zlib", header[4])
	}
	compressed := make([]byte, binary.BigEndian.Uint32(header[:4])-1)
	if _, err := io.ReadFull(f, compressed); err != nil {
		t.Fatal(err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	return data
}

func TestSaveRegion(t *testing.T) {
	dir := t.TempDir()
	data, err := testColumn().Encode()
	if err != nil {
		t.Fatal(err)
	}
	chunks := map[cubic.ColumnPos][]byte{
		{X: 1, Z: 2}: data,
		{X: 0, Z: 0}: {10, 0, 0, 0},
	}
	if err := SaveRegion(dir, 0, 0, chunks); err != nil {
		t.Fatalf("SaveRegion: %v", err)
	}

	path := filepath.Join(dir, "r.0.0.mca")
	if got := readChunk(t, path, 2*32+1); !bytes.Equal(got, data) {
		t.Error("chunk 1,2 does not round-trip")
	}
	if got := readChunk(t, path, 0); !bytes.Equal(got, []byte{10, 0, 0, 0}) {
		t.Errorf("chunk 0,0 = % x", got)
	}
}

func TestSaveRegionRejectsForeignColumn(t *testing.T) {
	err := SaveRegion(t.TempDir(), 0, 0, map[cubic.ColumnPos][]byte{{X: 40, Z: 0}: {10}})
	if err == nil {
		t.Error("SaveRegion should reject a column of another region")
	}
}

type mapSource struct {
	cubes map[cubic.CubePos]*cubic.Cube
}

func (s mapSource) Column(x, z int) *cubic.Column { return cubic.NewColumn(x, z) }

func (s mapSource) Cube(x, y, z int) *cubic.Cube {
	return s.cubes[cubic.CubePos{X: x, Y: y, Z: z}]
}

func TestExport(t *testing.T) {
	src := mapSource{cubes: map[cubic.CubePos]*cubic.Cube{}}
	for _, pos := range []cubic.CubePos{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 3, Z: 0}, {X: 40, Y: 1, Z: 40}} {
		p := cubic.NewPrimer()
		p.Fill(block.Stone)
		src.cubes[pos] = cubic.NewCube(pos, p)
	}

	dir := t.TempDir()
	n, err := Export(dir, src, []cubic.ColumnPos{{X: 0, Z: 0}, {X: -1, Z: 0}, {X: 40, Z: 40}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 3 {
		t.Errorf("Export wrote %d regions, want 3", n)
	}
	for _, name := range []string{"r.0.0.mca", "r.-1.0.mca", "r.1.1.mca"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
