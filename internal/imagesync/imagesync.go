// Package imagesync uploads archive images into object storage and removes
// stored objects no longer matching the expected catalog keys.
package imagesync

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

//go:generate mockery --name ObjectStore --filename object_store.go

// ObjectStore is flat key-value object storage without transactional
// guarantees.
type ObjectStore interface {
	// Exists reports whether object with key is stored.
	Exists(ctx context.Context, key string) (bool, error)
	// Put writes (or overwrites) object under key.
	Put(ctx context.Context, key string, body io.Reader, size int64) error
	// List returns keys of all stored objects under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes object with key.
	Delete(ctx context.Context, key string) error
}

// Engine syncs category image sets into an object store.
// Objects are keyed {category}/{filename}.
type Engine struct {
	store ObjectStore
}

// NewEngine returns new Engine writing into store.
func NewEngine(store ObjectStore) *Engine {
	return &Engine{store: store}
}

// Upload extracts every file of archiveBytes and writes it under the
// category prefix, overwriting stored objects. Returns how many objects
// were added and how many replaced.
func (e *Engine) Upload(ctx context.Context, category models.Category, archiveBytes []byte) (added, replaced int, err error) {
	archive, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		return 0, 0, fmt.Errorf("can't open archive: %w", err)
	}

	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}

		key := fmt.Sprintf("%s/%s", category, path.Base(file.Name))

		exists, err := e.store.Exists(ctx, key)
		if err != nil {
			return added, replaced, fmt.Errorf("can't check object %q: %w", key, err)
		}

		if err := e.putEntry(ctx, key, file); err != nil {
			return added, replaced, err
		}

		if exists {
			replaced++
		} else {
			added++
		}
	}

	return added, replaced, nil
}

func (e *Engine) putEntry(ctx context.Context, key string, file *zip.File) error {
	content, err := file.Open()
	if err != nil {
		return fmt.Errorf("can't read archive entry %q: %w", file.Name, err)
	}
	defer content.Close()

	if err := e.store.Put(ctx, key, content, int64(file.UncompressedSize64)); err != nil {
		return fmt.Errorf("can't store object %q: %w", key, err)
	}

	return nil
}

// Cleanup deletes stored objects under the category prefix whose base name
// (without extension) is not in expectedKeys. Delete failures are counted
// as warnings and never abort the sweep.
func (e *Engine) Cleanup(ctx context.Context, category models.Category, expectedKeys map[string]struct{}) (deleted, warnings int, err error) {
	prefix := string(category) + "/"

	keys, err := e.store.List(ctx, prefix)
	if err != nil {
		return 0, 0, fmt.Errorf("can't list objects under %q: %w", prefix, err)
	}

	for _, key := range keys {
		base := strings.TrimPrefix(key, prefix)
		base = strings.TrimSuffix(base, path.Ext(base))
		if _, ok := expectedKeys[base]; ok {
			continue
		}

		if err := e.store.Delete(ctx, key); err != nil {
			warnings++
			continue
		}
		deleted++
	}

	return deleted, warnings, nil
}
