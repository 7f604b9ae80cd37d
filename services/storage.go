package services

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ImageStorage writes uploaded images below a directory of an afero filesystem
type ImageStorage struct {
	fs  afero.Fs
	dir string
}

func NewImageStorage(fs afero.Fs, dir string) *ImageStorage {
	return &ImageStorage{fs: fs, dir: filepath.Clean(dir)}
}

// Save writes r to dir/name, creating dir when missing
func (s *ImageStorage) Save(name string, r io.Reader) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// FileSystem exposes the upload directory for static serving.
// Directories are reported as missing so their contents are never listed.
func (s *ImageStorage) FileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs).Dir(s.dir)}
}

type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil || info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

// Dir is the upload directory
func (s *ImageStorage) Dir() string {
	return s.dir
}
