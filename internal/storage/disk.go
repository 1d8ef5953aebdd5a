package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Disk writes uploaded bytes under a fixed root directory.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &Disk{root: root}, nil
}

func (d *Disk) Save(name string, data []byte) (string, error) {
	path := filepath.Join(d.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return path, nil
}
