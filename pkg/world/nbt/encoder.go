// Package nbt encodes the big-endian NBT format used by Anvil chunk files.
package nbt

import (
	"encoding/binary"
	"fmt"
)

// Tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
)

// Encoder appends named tags to an in-memory buffer. Compounds and lists take a
// function writing their contents, so nesting always balances.
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an Encoder with room for size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded data, or the first error met while encoding.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

func (e *Encoder) header(tag byte, name string) {
	e.buf = append(e.buf, tag)
	e.str(name)
}

func (e *Encoder) str(s string) {
	if len(s) > 0xFFFF {
		e.fail(fmt.Errorf("string of %d bytes is too long", len(s)))
		s = ""
	}
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *Encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Compound writes a compound tag whose fields are written by body.
func (e *Encoder) Compound(name string, body func()) {
	e.header(TagCompound, name)
	body()
	e.buf = append(e.buf, TagEnd)
}

// CompoundList writes a list of n compounds; elem writes the fields of element i.
func (e *Encoder) CompoundList(name string, n int, elem func(i int)) {
	e.header(TagList, name)
	e.buf = append(e.buf, TagCompound)
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	for i := 0; i < n; i++ {
		elem(i)
		e.buf = append(e.buf, TagEnd)
	}
}

func (e *Encoder) Byte(name string, v byte) {
	e.header(TagByte, name)
	e.buf = append(e.buf, v)
}

func (e *Encoder) Int(name string, v int32) {
	e.header(TagInt, name)
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(v))
}

func (e *Encoder) Long(name string, v int64) {
	e.header(TagLong, name)
	e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(v))
}

func (e *Encoder) String(name, v string) {
	e.header(TagString, name)
	e.str(v)
}

func (e *Encoder) ByteArray(name string, v []byte) {
	e.header(TagByteArray, name)
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(v)))
	e.buf = append(e.buf, v...)
}

func (e *Encoder) IntArray(name string, v []int32) {
	e.header(TagIntArray, name)
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(v)))
	for _, n := range v {
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
}
