package waveform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDatasetNotFound is returned when an archive has no dataset under the requested key
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrMalformedDataset is returned for tables that cannot be read as [time, real, imag] rows
	ErrMalformedDataset = errors.New("malformed dataset")
)

// Archive is a hierarchical store of numeric tables, addressed by a group
// (the extraction method) and a dataset name (the mode file).
type Archive interface {
	Dataset(group, name string) (*mat.Dense, error)
}

// MemoryArchive is an in-memory Archive keyed by group then dataset name
type MemoryArchive map[string]map[string]*mat.Dense

// Dataset implements Archive
func (a MemoryArchive) Dataset(group, name string) (*mat.Dense, error) {
	table, ok := a[group][name]
	if !ok || table == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrDatasetNotFound, group, name)
	}
	return table, nil
}

// DirArchive reads the unpacked SXS layout where each group is a directory
// and each dataset a whitespace separated text table. A dataset missing on
// disk is also looked up with a ".gz" suffix.
type DirArchive struct {
	Root string
}

// Dataset implements Archive
func (a DirArchive) Dataset(group, name string) (*mat.Dense, error) {
	path := filepath.Join(a.Root, group, name)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return a.gzipDataset(path+".gz", group, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s/%s: %w", group, name, err)
	}
	defer f.Close()

	return parseOrWrap(f, group, name)
}

func (a DirArchive) gzipDataset(path, group, name string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrDatasetNotFound, group, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s/%s: %w", group, name, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset %s/%s: %w", group, name, err)
	}
	defer zr.Close()

	return parseOrWrap(zr, group, name)
}

func parseOrWrap(r io.Reader, group, name string) (*mat.Dense, error) {
	table, err := ParseTable(r)
	if err != nil {
		return nil, fmt.Errorf("dataset %s/%s: %w", group, name, err)
	}
	return table, nil
}

// ParseTable reads a whitespace separated numeric table. Text after '#' is
// ignored and blank lines are skipped. Every row must have the same width.
func ParseTable(r io.Reader) (*mat.Dense, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		data  []float64
		cols  int
		rows  int
		lineN int
	)

	for scanner.Scan() {
		lineN++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d",
				ErrMalformedDataset, lineN, len(fields), cols)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDataset, lineN, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedDataset)
	}

	return mat.NewDense(rows, cols, data), nil
}
