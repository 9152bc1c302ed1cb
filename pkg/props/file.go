package props

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// File is the backing resource a Store is loaded from and flushed to.
type File struct {
	fs    afero.Fs
	path  string
	codec Codec
}

// NewFile returns a backing file at path on fs. A nil codec is chosen from
// the file extension.
func NewFile(fs afero.Fs, path string, codec Codec) *File {
	if codec == nil {
		codec = CodecFor(path)
	}
	return &File{fs: fs, path: path, codec: codec}
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the file is present.
func (f *File) Exists() (bool, error) {
	ok, err := afero.Exists(f.fs, f.path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	return ok, nil
}

// Create makes an empty file, including parent directories. An existing file
// is left untouched.
func (f *File) Create() error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := f.fs.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create %s: %w", f.path, err)
	}
	return file.Close()
}

// Load reads the file into a clean Store. A missing file yields an empty store.
func (f *File) Load() (*Store, error) {
	ok, err := f.Exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return New(), nil
	}

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	values, err := f.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", f.path, err)
	}
	return FromMap(values), nil
}

// Flush overwrites the file with the full contents of s and marks s clean.
// Changes made to the file since it was loaded are lost.
func (f *File) Flush(s *Store) error {
	var buf bytes.Buffer
	if err := f.codec.Encode(&buf, s.values); err != nil {
		return fmt.Errorf("failed to save %s: %w", f.path, err)
	}

	if err := writeAtomic(f.fs, f.path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	s.markClean()
	return nil
}

// writeAtomic writes content next to path and renames it into place.
func writeAtomic(fs afero.Fs, path string, content []byte) error {
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, content, 0644); err != nil {
		return err
	}
	return fs.Rename(tmp, path)
}
