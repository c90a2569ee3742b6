package mappingstore

import (
	"fmt"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironlab/playenrich/internal/domain/gamemap"
)

// FileStore persists game mappings as one JSON object keyed by source game
// id. The whole object is read at startup and rewritten on every save.
// Single writer per file; concurrent writers need external coordination.
type FileStore struct {
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (map[string]gamemap.Mapping, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]gamemap.Mapping{}, nil
		}
		return nil, fmt.Errorf("read mapping cache %s: %w", s.path, err)
	}

	out := make(map[string]gamemap.Mapping)
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode mapping cache %s: %w", s.path, err)
	}
	return out, nil
}

func (s *FileStore) Save(mappings map[string]gamemap.Mapping) error {
	raw, err := sonic.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create mapping cache dir: %w", err)
	}

	// Write-rename so a crash mid-save never truncates the existing cache.
	tmp, err := os.CreateTemp(dir, ".mappings-*.json")
	if err != nil {
		return fmt.Errorf("create temp mapping cache: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp mapping cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp mapping cache: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace mapping cache: %w", err)
	}
	return nil
}
