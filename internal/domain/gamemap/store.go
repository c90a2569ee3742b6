package gamemap

// Store persists resolved mappings. Load reads the full set at startup;
// Save rewrites the full set after each new mapping (write-through).
// Implementations assume a single writer per backing file.
type Store interface {
	Load() (map[string]Mapping, error)
	Save(mappings map[string]Mapping) error
}
