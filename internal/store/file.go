package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v3"
)

// File is a Store backed by a single YAML document. The first segment of a
// dotted key is the top level mapping, the rest is the entry inside it:
//
//	cron:
//	  status: true
//	  limit: 50
type File struct {
	staged
	path string
}

// OpenFile loads the YAML document at path. A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		f.load(nil)
		return f, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	f.load(flatten(doc))
	log.Trace().Str("path", path).Int("keys", len(f.committed)).Msg("loaded settings file")
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

// Save writes the whole document to a temp file next to the target and
// renames it over, so readers see either the old or the new document.
func (f *File) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.commit(func(merged, changes map[string]any) error {
		data, err := yaml.Marshal(nest(merged))
		if err != nil {
			return fmt.Errorf("failed to marshal settings to yaml: %w", err)
		}
		if err := writeAtomic(f.path, data); err != nil {
			return err
		}
		log.Debug().Str("path", f.path).Int("changed", len(changes)).Msg("saved settings file")
		return nil
	})
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

func nest(flat map[string]any) map[string]any {
	doc := map[string]any{}
	for k, v := range flat {
		group, name, ok := strings.Cut(k, ".")
		if !ok {
			doc[k] = v
			continue
		}
		m, isMap := doc[group].(map[string]any)
		if !isMap {
			m = map[string]any{}
			doc[group] = m
		}
		m[name] = v
	}
	return doc
}

func flatten(doc map[string]any) map[string]any {
	flat := map[string]any{}
	for group, v := range doc {
		m, ok := v.(map[string]any)
		if !ok {
			flat[group] = v
			continue
		}
		for name, leaf := range m {
			flat[group+"."+name] = leaf
		}
	}
	return flat
}
