package mappingstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridironlab/playenrich/internal/domain/gamemap"
)

func TestFileStoreRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "mappings.json")
	store := New(path)

	mappings := map[string]gamemap.Mapping{
		"2023091000": {
			SourceGameID:   "2023091000",
			ExternalGameID: "401547401",
			Date:           "20230910",
			HomeTeam:       "Kansas City Chiefs",
			HomeAbbrev:     "KC",
			AwayTeam:       "Detroit Lions",
			AwayAbbrev:     "DET",
			Stadium:        "GEHA Field at Arrowhead Stadium",
		},
		"2023091001": {
			SourceGameID:   "2023091001",
			ExternalGameID: "401547402",
			Date:           "20230910",
		},
	}

	if err := store.Save(mappings); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(loaded))
	}
	if loaded["2023091000"] != mappings["2023091000"] {
		t.Fatalf("roundtrip mismatch: %+v", loaded["2023091000"])
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := New(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(loaded))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected decode error for corrupt cache")
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.json")
	store := New(path)

	if err := store.Save(map[string]gamemap.Mapping{
		"2023091000": {SourceGameID: "2023091000", ExternalGameID: "old"},
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(map[string]gamemap.Mapping{
		"2023091000": {SourceGameID: "2023091000", ExternalGameID: "new"},
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded["2023091000"].ExternalGameID != "new" {
		t.Fatalf("save did not replace previous contents: %+v", loaded)
	}
}
