package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileBackend stores each collection as a JSON file under a data directory.
type FileBackend struct {
	dir string
	log *zap.Logger
}

func NewFileBackend(dir string, log *zap.Logger) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", ErrStorage, dir, err)
	}

	return &FileBackend{
		dir: dir,
		log: log.With(zap.String("storage", "file")),
	}, nil
}

func (b *FileBackend) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, os.ErrNotExist) {
		// Lazily initialized collection.
		return nil, nil
	}
	if err != nil {
		b.log.Error("Failed to read collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, name, err)
	}

	return data, nil
}

// Write replaces the collection file in one step: the document is written
// to a temp file and renamed over the old one, so readers never observe a
// partial write.
func (b *FileBackend) Write(name string, data []byte) error {
	target := b.path(name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		b.log.Error("Failed to write collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: write %s: %v", ErrStorage, name, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		b.log.Error("Failed to replace collection file",
			zap.String("collection", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: replace %s: %v", ErrStorage, name, err)
	}

	return nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}
