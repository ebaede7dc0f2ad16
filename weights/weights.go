// Package weights persists n-tuple network weight tables to a compact
// binary format: a table count, then per table an entry count followed by
// that many little-endian float32 values.
package weights

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Save writes tables to w in order.
func Save(w io.Writer, tables [][]float32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tables))); err != nil {
		return fmt.Errorf("weights: write table count: %w", err)
	}
	for i, t := range tables {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(t))); err != nil {
			return fmt.Errorf("weights: write entry count for table %d: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, t); err != nil {
			return fmt.Errorf("weights: write entries for table %d: %w", i, err)
		}
	}
	return nil
}

// Load reads tables previously written by Save. The returned slices are
// freshly allocated.
func Load(r io.Reader) ([][]float32, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("weights: read table count: %w", err)
	}

	tables := make([][]float32, count)
	for i := range tables {
		var n uint64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("weights: read entry count for table %d: %w", i, err)
		}
		t := make([]float32, n)
		if err := binary.Read(r, binary.LittleEndian, t); err != nil {
			return nil, fmt.Errorf("weights: read entries for table %d: %w", i, err)
		}
		tables[i] = t
	}
	return tables, nil
}

// SaveFile truncates or creates path and writes tables to it.
func SaveFile(path string, tables [][]float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weights: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Save(f, tables); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile reads tables from path.
func LoadFile(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weights: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
