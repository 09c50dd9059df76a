// Package storage persists cubes and columns in a LevelDB database.
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

// Store is a cube and column database rooted at a directory. It is safe for
// concurrent use.
type Store struct {
	db  *leveldb.DB
	log *slog.Logger
	id  uuid.UUID

	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens or creates the database in dir. A new database is given a random
// world ID; an existing one keeps its own.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	db, err := leveldb.OpenFile(dir, &opt.Options{Compression: opt.NoCompression})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	s := &Store{db: db, log: log, enc: enc, dec: dec}
	if err := s.loadID(); err != nil {
		s.Close()
		return nil, err
	}
	log.Info("opened cube store", "dir", dir, "world", s.id)
	return s, nil
}

func (s *Store) loadID() error {
	data, err := s.db.Get(keyWorldID, nil)
	switch {
	case err == nil:
		id, err := uuid.FromBytes(data)
		if err != nil {
			return fmt.Errorf("parse world id: %w", err)
		}
		s.id = id
		return nil
	case errors.Is(err, leveldb.ErrNotFound):
		s.id = uuid.New()
		if err := s.db.Put(keyWorldID, s.id[:], nil); err != nil {
			return fmt.Errorf("write world id: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("read world id: %w", err)
	}
}

// ID returns the world ID stored with the database.
func (s *Store) ID() uuid.UUID { return s.id }

// SaveCube writes c.
func (s *Store) SaveCube(c *cubic.Cube) error {
	if err := s.db.Put(cubeKey(c.Pos()), s.encodeCube(c), nil); err != nil {
		return fmt.Errorf("write cube %v: %w", c.Pos(), err)
	}
	return nil
}

// LoadCube reads the cube at pos. It returns nil and no error when the cube was
// never saved.
func (s *Store) LoadCube(pos cubic.CubePos) (*cubic.Cube, error) {
	data, err := s.db.Get(cubeKey(pos), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cube %v: %w", pos, err)
	}
	c, err := s.decodeCube(pos, data)
	if err != nil {
		return nil, fmt.Errorf("decode cube %v: %w", pos, err)
	}
	return c, nil
}

// SaveColumn writes c.
func (s *Store) SaveColumn(c *cubic.Column) error {
	if err := s.db.Put(columnKey(c.Pos()), s.encodeColumn(c), nil); err != nil {
		return fmt.Errorf("write column %v: %w", c.Pos(), err)
	}
	return nil
}

// LoadColumn reads the column at pos. It returns nil and no error when the column
// was never saved.
func (s *Store) LoadColumn(pos cubic.ColumnPos) (*cubic.Column, error) {
	data, err := s.db.Get(columnKey(pos), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read column %v: %w", pos, err)
	}
	c, err := s.decodeColumn(pos, data)
	if err != nil {
		return nil, fmt.Errorf("decode column %v: %w", pos, err)
	}
	return c, nil
}

// SaveAll writes columns and cubes in one batch.
func (s *Store) SaveAll(columns []*cubic.Column, cubes []*cubic.Cube) error {
	b := new(leveldb.Batch)
	for _, c := range columns {
		b.Put(columnKey(c.Pos()), s.encodeColumn(c))
	}
	for _, c := range cubes {
		b.Put(cubeKey(c.Pos()), s.encodeCube(c))
	}
	if err := s.db.Write(b, nil); err != nil {
		return fmt.Errorf("write batch: %w", err)
	}
	s.log.Debug("saved batch", "columns", len(columns), "cubes", len(cubes))
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}
