package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	KindSong  = "song"
	KindImage = "image"
)

var ErrInvalidKind = errors.New("invalid storage kind")

// Gateway writes uploaded media under a root directory and hands back the
// reference path persisted in the catalog (e.g. "/songs/<uuid>.mp3").
type Gateway interface {
	Store(r io.Reader, originalName, kind string) (string, error)
	Delete(refPath string) error
}

type DiskGateway struct {
	root string
}

func NewDiskGateway(root string) (*DiskGateway, error) {
	for _, sub := range []string{"songs", "images"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	return &DiskGateway{root: root}, nil
}

func (g *DiskGateway) Store(r io.Reader, originalName, kind string) (string, error) {
	var sub string
	switch kind {
	case KindSong:
		sub = "songs"
	case KindImage:
		sub = "images"
	default:
		return "", ErrInvalidKind
	}

	name := uuid.NewString() + filepath.Ext(originalName)
	dst := filepath.Join(g.root, sub, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close %s: %w", dst, err)
	}
	return "/" + sub + "/" + name, nil
}

func (g *DiskGateway) Delete(refPath string) error {
	if refPath == "" {
		return nil
	}
	clean := strings.TrimPrefix(refPath, "/")
	return os.Remove(filepath.Join(g.root, filepath.FromSlash(clean)))
}
